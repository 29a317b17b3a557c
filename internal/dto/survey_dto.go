package dto

import (
	"time"

	"github.com/google/uuid"
)

// QuestionInstanceDTO is a question as presented to the employee, whether it
// came from the catalog or from the follow-up generator.
type QuestionInstanceDTO struct {
	ID             uuid.UUID  `json:"id"`
	Text           string     `json:"text"`
	Dimension      string     `json:"dimension"`
	Ordinal        int        `json:"ordinal"`
	IsFollowUp     bool       `json:"is_follow_up"`
	ParentInstance *uuid.UUID `json:"parent_instance,omitempty"`
}

type ProgressDTO struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// SurveyStateDTO is the response of the start/resume endpoint.
type SurveyStateDTO struct {
	Completed        bool                 `json:"completed"`
	TotalQuestions   int                  `json:"totalQuestions,omitempty"`
	QuestionInstance *QuestionInstanceDTO `json:"questionInstance,omitempty"`
	Progress         *ProgressDTO         `json:"progress,omitempty"`
}

type SubmitAnswerDTO struct {
	QuestionInstanceID uuid.UUID `json:"questionInstanceId" binding:"required"`
	AnswerText         string    `json:"answerText" binding:"required"`
}

type AnswerDTO struct {
	ID                 uuid.UUID `json:"id"`
	QuestionInstanceID uuid.UUID `json:"questionInstanceId"`
	AnswerText         string    `json:"answerText"`
	CreatedAt          time.Time `json:"createdAt"`
}

type SubmitAnswerResponseDTO struct {
	Answer AnswerDTO `json:"answer"`
}

type FollowUpRequestDTO struct {
	QuestionInstanceID uuid.UUID `json:"questionInstanceId" binding:"required"`
	OriginalQuestion   string    `json:"originalQuestion" binding:"required"`
	EmployeeAnswer     string    `json:"employeeAnswer" binding:"required"`
	CurrentOrdinal     int       `json:"currentOrdinal" binding:"required,gt=0"`
}

type FollowUpQuestionDTO struct {
	ID             uuid.UUID `json:"id"`
	Text           string    `json:"text"`
	Ordinal        int       `json:"ordinal"`
	ParentInstance uuid.UUID `json:"parentInstance"`
}

type FollowUpResponseDTO struct {
	HasFollowUp      bool                 `json:"hasFollowUp"`
	Message          string               `json:"message,omitempty"`
	FollowUpQuestion *FollowUpQuestionDTO `json:"followUpQuestion,omitempty"`
}
