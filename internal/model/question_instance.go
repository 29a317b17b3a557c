package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionInstance is one question presented to one employee. Base instances
// reference a catalog Question; AI follow-ups carry their literal text in
// GeneratedText and point at the instance that spawned them.
type QuestionInstance struct {
	ID               uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	CompanyID        string     `json:"company_id" gorm:"not null;index"`
	EmployeeID       string     `json:"employee_id" gorm:"not null;index"`
	QuestionID       *uint      `json:"question_id,omitempty"`
	Question         *Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	GeneratedText    *string    `json:"generated_text,omitempty" gorm:"type:text"`
	ParentInstanceID *uuid.UUID `json:"parent_instance,omitempty" gorm:"type:uuid"`
	Ordinal          int        `json:"ordinal" gorm:"not null;index:idx_instance_employee_ordinal"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (qi *QuestionInstance) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// IsFollowUp reports whether this instance was generated by the AI rather
// than drawn from the catalog.
func (qi *QuestionInstance) IsFollowUp() bool {
	return qi.ParentInstanceID != nil
}

// DisplayText resolves the question text regardless of source: the joined
// catalog row for base questions, the stored literal for follow-ups.
func (qi *QuestionInstance) DisplayText() string {
	if qi.GeneratedText != nil {
		return *qi.GeneratedText
	}
	if qi.Question != nil {
		return qi.Question.Text
	}
	return ""
}

// Dimension returns the catalog dimension tag, or "general" for follow-ups.
func (qi *QuestionInstance) Dimension() string {
	if qi.Question != nil && qi.Question.Dimension != "" {
		return qi.Question.Dimension
	}
	return "general"
}
