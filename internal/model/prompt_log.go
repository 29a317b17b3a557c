package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PromptSourceQuestionSelection = "question_selection"
	PromptSourceReportGeneration  = "report_generation"
)

// PromptLog is the append-only audit record of every AI prompt/response pair.
// Writes are best-effort; a failed insert never fails the request.
type PromptLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CompanyID  string    `json:"company_id" gorm:"index"`
	EmployeeID string    `json:"employee_id" gorm:"index"`
	Source     string    `json:"source" gorm:"not null"`
	Model      string    `json:"model"`
	Prompt     string    `json:"prompt" gorm:"type:text"`
	Response   string    `json:"response" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *PromptLog) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
