package model

// Module groups catalog questions by assessment area ("AI Literacy & Skills",
// "Workflow Integration", ...).
type Module struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name" gorm:"not null"`
}

// Question is one row of the fixed, versioned catalog. Seeded by admins,
// never mutated by the survey engine.
type Question struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	ModuleID  uint   `json:"module_id" gorm:"index"`
	Module    Module `json:"module,omitempty" gorm:"foreignKey:ModuleID"`
	Dimension string `json:"dimension" gorm:"not null;index"`
	Text      string `json:"text" gorm:"type:text;not null"`
	Active    bool   `json:"active" gorm:"not null;default:true"`
}
