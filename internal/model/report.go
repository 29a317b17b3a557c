package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is an AI-generated company readiness assessment. Append-only;
// never updated after creation.
type Report struct {
	ID            uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CompanyID     string    `json:"company_id" gorm:"not null;index"`
	CreatedBy     string    `json:"created_by" gorm:"not null"`
	GeneratedAt   time.Time `json:"generated_at" gorm:"autoCreateTime"`
	ScoresJSON    string    `json:"scores_json" gorm:"type:text;not null"`
	NarrativeJSON string    `json:"narrative_json" gorm:"type:text;not null"`
	SharedSlug    string    `json:"shared_slug" gorm:"index"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ReportScore is a denormalized per-dimension score row, written best-effort
// alongside the report for easier querying. The report's ScoresJSON stays the
// source of truth.
type ReportScore struct {
	ReportID  uuid.UUID `json:"report_id" gorm:"type:uuid;primarykey"`
	Dimension string    `json:"dimension" gorm:"primarykey"`
	Score     float64   `json:"score"`
}
