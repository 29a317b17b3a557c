package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateReportDTO struct {
	IncludeAllEmployees *bool `json:"includeAllEmployees"`
}

// DimensionScoreDTO is one scored dimension in the AI-generated report.
type DimensionScoreDTO struct {
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

type NarrativeDTO struct {
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

type ReportSummaryDTO struct {
	TotalEmployees int       `json:"totalEmployees"`
	TotalResponses int       `json:"totalResponses"`
	AverageScore   float64   `json:"averageScore"`
	CompletionDate time.Time `json:"completionDate"`
}

type ReportDTO struct {
	ID        uuid.UUID                    `json:"id"`
	ShareSlug string                       `json:"shareSlug"`
	CreatedAt time.Time                    `json:"createdAt"`
	Scores    map[string]DimensionScoreDTO `json:"scores"`
	Narrative NarrativeDTO                 `json:"narrative"`
	Summary   ReportSummaryDTO             `json:"summary"`
}

type GenerateReportResponseDTO struct {
	Report ReportDTO `json:"report"`
}

// SharedReportDTO is the public view served by the unauthenticated share link.
type SharedReportDTO struct {
	ID             uuid.UUID                    `json:"id"`
	CompanyName    string                       `json:"companyName"`
	GeneratedAt    time.Time                    `json:"generatedAt"`
	TotalEmployees int                          `json:"totalEmployees"`
	TotalResponses int                          `json:"totalResponses"`
	AverageScore   float64                      `json:"averageScore"`
	Scores         map[string]DimensionScoreDTO `json:"scores"`
	Narrative      NarrativeDTO                 `json:"narrative"`
}

type SharedReportResponseDTO struct {
	Report SharedReportDTO `json:"report"`
}
