package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer holds at most one response per question instance. Resubmission
// overwrites the text in place; no history is kept.
type Answer struct {
	ID                 uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	QuestionInstanceID uuid.UUID `json:"question_instance_id" gorm:"type:uuid;not null;uniqueIndex"`
	EmployeeID         string    `json:"employee_id" gorm:"not null;index"`
	CompanyID          string    `json:"company_id" gorm:"not null;index"`
	AnswerText         string    `json:"answer_text" gorm:"type:text;not null"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
