package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/hoangnm/air-platform/config"
	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/identity"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/hoangnm/air-platform/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ReportService synthesizes company-wide readiness reports. The analytical
// aggregation is delegated entirely to the LLM in a single call; this service
// only flattens the data, validates the structured result, and persists it.
type ReportService interface {
	Generate(ctx context.Context, ident identity.Identity, includeAllEmployees bool) (*dto.GenerateReportResponseDTO, error)
	// GetShared serves the unauthenticated public share link.
	GetShared(slug string) (*dto.SharedReportResponseDTO, error)
}

type reportService struct {
	instanceRepo  repository.QuestionInstanceRepository
	answerRepo    repository.AnswerRepository
	userRepo      repository.UserRepository
	companyRepo   repository.CompanyRepository
	reportRepo    repository.ReportRepository
	promptLogRepo repository.PromptLogRepository
	llm           LLMService
	email         EmailService
	timeout       time.Duration
}

func NewReportService(
	instanceRepo repository.QuestionInstanceRepository,
	answerRepo repository.AnswerRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	reportRepo repository.ReportRepository,
	promptLogRepo repository.PromptLogRepository,
	llm LLMService,
	email EmailService,
	cfg *config.Config,
) ReportService {
	timeout := time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &reportService{
		instanceRepo:  instanceRepo,
		answerRepo:    answerRepo,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		reportRepo:    reportRepo,
		promptLogRepo: promptLogRepo,
		llm:           llm,
		email:         email,
		timeout:       timeout,
	}
}

// reportPayload is the structure the LLM must return.
type reportPayload struct {
	Scores    map[string]dto.DimensionScoreDTO `json:"scores"`
	Narrative dto.NarrativeDTO                 `json:"narrative"`
}

func (s *reportService) Generate(ctx context.Context, ident identity.Identity, includeAllEmployees bool) (*dto.GenerateReportResponseDTO, error) {
	if !ident.HasCompany() {
		return nil, apperr.New(apperr.KindNoCompanyAssociation, "No company association found")
	}

	user, err := s.userRepo.FindByID(ident.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to generate report", err)
	}
	if user == nil || user.Role != identity.RoleManager {
		return nil, apperr.New(apperr.KindForbidden, "Only managers can generate reports")
	}

	company, err := s.companyRepo.FindByID(ident.CompanyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "Company not found", err)
	}

	responses, err := s.collectResponses(ident.CompanyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to collect survey responses", err)
	}
	if len(responses) == 0 {
		return nil, apperr.New(apperr.KindNoData, "No survey responses found. Employees must complete the survey first.")
	}

	prompt := buildReportPrompt(company.Name, responses)

	llmCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// No degrade path here: a failed or timed-out report call is surfaced to
	// the manager as-is.
	resp, err := s.llm.Generate(llmCtx, reportSystemPrompt, prompt)
	if err != nil {
		log.Error().Err(err).Str("company_id", ident.CompanyID).Msg("Report generation LLM call failed")
		return nil, apperr.Wrap(apperr.KindExternalCapability, "Failed to generate report. Please try again.", err)
	}

	payload, err := parseReportPayload(resp.Content)
	if err != nil {
		log.Error().Err(err).Str("raw_response", resp.Content).Msg("AI report response failed validation")
		return nil, apperr.Wrap(apperr.KindMalformedAIResponse, "Failed to parse AI-generated report. Please try again.", err)
	}

	scoresJSON, err := json.Marshal(payload.Scores)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to generate report", err)
	}
	narrativeJSON, err := json.Marshal(payload.Narrative)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to generate report", err)
	}

	report := &model.Report{
		CompanyID:     ident.CompanyID,
		CreatedBy:     ident.UserID,
		ScoresJSON:    string(scoresJSON),
		NarrativeJSON: string(narrativeJSON),
		SharedSlug:    shareSlug(company.Name),
	}
	if err := s.reportRepo.Create(report); err != nil {
		log.Error().Err(err).Str("company_id", ident.CompanyID).Msg("Failed to persist report")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to save report", err)
	}

	// Everything after the report write is best-effort.
	s.persistScores(report.ID, payload.Scores)
	s.audit(ident, resp.Model, prompt, resp.Content)
	s.notifyManager(user, company.Name, report.SharedSlug)

	employees := map[string]struct{}{}
	for _, r := range responses {
		employees[r.EmployeeID] = struct{}{}
	}

	return &dto.GenerateReportResponseDTO{
		Report: dto.ReportDTO{
			ID:        report.ID,
			ShareSlug: report.SharedSlug,
			CreatedAt: report.GeneratedAt,
			Scores:    payload.Scores,
			Narrative: payload.Narrative,
			Summary: dto.ReportSummaryDTO{
				TotalEmployees: len(employees),
				TotalResponses: len(responses),
				AverageScore:   averageScore(payload.Scores),
				CompletionDate: time.Now(),
			},
		},
	}, nil
}

func (s *reportService) GetShared(slug string) (*dto.SharedReportResponseDTO, error) {
	report, err := s.reportRepo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "Report not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to load report", err)
	}

	companyName := "Unknown Company"
	if company, cErr := s.companyRepo.FindByID(report.CompanyID); cErr == nil {
		companyName = company.Name
	}

	var scores map[string]dto.DimensionScoreDTO
	if err := json.Unmarshal([]byte(report.ScoresJSON), &scores); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to load report", err)
	}
	var narrative dto.NarrativeDTO
	if err := json.Unmarshal([]byte(report.NarrativeJSON), &narrative); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to load report", err)
	}

	totalEmployees, totalResponses := 0, 0
	if answers, aErr := s.answerRepo.FindByCompanyID(report.CompanyID); aErr == nil {
		employees := map[string]struct{}{}
		for _, a := range answers {
			employees[a.EmployeeID] = struct{}{}
		}
		totalEmployees = len(employees)
		totalResponses = len(answers)
	}

	return &dto.SharedReportResponseDTO{
		Report: dto.SharedReportDTO{
			ID:             report.ID,
			CompanyName:    companyName,
			GeneratedAt:    report.GeneratedAt,
			TotalEmployees: totalEmployees,
			TotalResponses: totalResponses,
			AverageScore:   averageScore(scores),
			Scores:         scores,
			Narrative:      narrative,
		},
	}, nil
}

// collectResponses flattens every answered instance for the company into the
// list the LLM analyzes. Follow-up answers are included under the "general"
// dimension.
func (s *reportService) collectResponses(companyID string) ([]EmployeeResponse, error) {
	instances, err := s.instanceRepo.FindByCompanyID(companyID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.FindByCompanyID(companyID)
	if err != nil {
		return nil, err
	}
	answerByInstance := make(map[uuid.UUID]*model.Answer, len(answers))
	for i := range answers {
		answerByInstance[answers[i].QuestionInstanceID] = &answers[i]
	}

	roleByEmployee := map[string]string{}
	if employees, eErr := s.userRepo.FindEmployeesByCompanyID(companyID); eErr == nil {
		for _, e := range employees {
			roleByEmployee[e.ID] = e.FullName
		}
	}

	var responses []EmployeeResponse
	for i := range instances {
		inst := &instances[i]
		answer, ok := answerByInstance[inst.ID]
		if !ok || answer.AnswerText == "" {
			continue
		}
		responses = append(responses, EmployeeResponse{
			EmployeeID: inst.EmployeeID,
			Role:       roleByEmployee[inst.EmployeeID],
			Question:   inst.DisplayText(),
			Dimension:  inst.Dimension(),
			Answer:     answer.AnswerText,
		})
	}
	return responses, nil
}

// parseReportPayload decodes and validates the LLM output against the fixed
// schema: exactly the enumerated dimensions, every score in [0,5]. Any
// violation rejects the whole response; nothing is written first.
func parseReportPayload(raw string) (*reportPayload, error) {
	var payload reportPayload
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode report JSON: %w", err)
	}

	if len(payload.Scores) != len(model.ReportDimensions) {
		return nil, fmt.Errorf("expected %d scored dimensions, got %d", len(model.ReportDimensions), len(payload.Scores))
	}
	for _, dim := range model.ReportDimensions {
		score, ok := payload.Scores[dim]
		if !ok {
			return nil, fmt.Errorf("missing dimension %q", dim)
		}
		if score.Score < 0 || score.Score > 5 {
			return nil, fmt.Errorf("dimension %q score %v out of range [0,5]", dim, score.Score)
		}
	}
	if payload.Narrative.Strengths == nil || payload.Narrative.Gaps == nil || payload.Narrative.Recommendations == nil {
		return nil, fmt.Errorf("narrative sections incomplete")
	}
	return &payload, nil
}

// stripCodeFences removes a surrounding markdown fence; Gemini routinely
// wraps JSON output in ```json blocks.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// shareSlug builds the public slug from the company name plus a millisecond
// timestamp. No uniqueness retry; collisions are practically negligible at
// report-generation frequency.
func shareSlug(companyName string) string {
	slug := strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, companyName)
	return slug + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func averageScore(scores map[string]dto.DimensionScoreDTO) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s.Score
	}
	return math.Round(sum/float64(len(scores))*10) / 10
}

func (s *reportService) persistScores(reportID uuid.UUID, scores map[string]dto.DimensionScoreDTO) {
	entries := make([]model.ReportScore, 0, len(scores))
	for dim, score := range scores {
		entries = append(entries, model.ReportScore{ReportID: reportID, Dimension: dim, Score: score.Score})
	}
	if err := s.reportRepo.CreateScores(entries); err != nil {
		log.Error().Err(err).Str("report_id", reportID.String()).Msg("Failed to save denormalized report scores")
	}
}

func (s *reportService) audit(ident identity.Identity, modelName, prompt, response string) {
	entry := &model.PromptLog{
		CompanyID:  ident.CompanyID,
		EmployeeID: ident.UserID,
		Source:     model.PromptSourceReportGeneration,
		Model:      modelName,
		Prompt:     prompt,
		Response:   response,
	}
	if err := s.promptLogRepo.Create(entry); err != nil {
		log.Error().Err(err).Msg("Failed to write prompt log entry")
	}
}

func (s *reportService) notifyManager(manager *model.User, companyName, slug string) {
	if manager.Email == "" {
		return
	}
	name := manager.FullName
	if name == "" {
		name = "Manager"
	}
	if err := s.email.SendReportReady(manager.Email, name, companyName, slug); err != nil {
		log.Error().Err(err).Str("to", manager.Email).Msg("Failed to send report ready email")
	}
}
