package service

import (
	"context"
	"strings"
	"time"

	"github.com/hoangnm/air-platform/config"
	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/identity"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/hoangnm/air-platform/internal/repository"
	"github.com/rs/zerolog/log"
)

// noFollowUpSentinel is the literal the model emits when the answer needs no
// probing. Part of the prompt contract; parseFollowUp is the only place that
// knows about it.
const noFollowUpSentinel = "NO_FOLLOWUP"

// FollowUpService decides, after each answer, whether to append one
// AI-generated follow-up question to the employee's sequence.
type FollowUpService interface {
	// MaybeGenerateFollowUp asks the LLM for a follow-up to the given
	// answered question. A sentinel or empty response, and any LLM failure,
	// yields hasFollowUp=false — a stalled AI provider never blocks survey
	// completion. At most one instance is created per call.
	MaybeGenerateFollowUp(ctx context.Context, ident identity.Identity, req dto.FollowUpRequestDTO) (*dto.FollowUpResponseDTO, error)
}

type followUpService struct {
	instanceRepo  repository.QuestionInstanceRepository
	promptLogRepo repository.PromptLogRepository
	userRepo      repository.UserRepository
	companyRepo   repository.CompanyRepository
	llm           LLMService
	timeout       time.Duration
}

func NewFollowUpService(
	instanceRepo repository.QuestionInstanceRepository,
	promptLogRepo repository.PromptLogRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	llm LLMService,
	cfg *config.Config,
) FollowUpService {
	timeout := time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &followUpService{
		instanceRepo:  instanceRepo,
		promptLogRepo: promptLogRepo,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		llm:           llm,
		timeout:       timeout,
	}
}

func (s *followUpService) MaybeGenerateFollowUp(ctx context.Context, ident identity.Identity, req dto.FollowUpRequestDTO) (*dto.FollowUpResponseDTO, error) {
	if !ident.HasCompany() {
		return nil, apperr.New(apperr.KindNoCompanyAssociation, "No company association found")
	}

	parent, err := s.instanceRepo.FindByID(req.QuestionInstanceID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Question instance not found", err)
	}
	if parent.EmployeeID != ident.UserID {
		log.Warn().Str("employee_id", ident.UserID).Str("instance_id", parent.ID.String()).Msg("MaybeGenerateFollowUp: cross-employee access attempt")
		return nil, apperr.New(apperr.KindOwnership, "Question instance does not belong to you")
	}

	role, company := s.employeeContext(ident)
	prompt := buildFollowUpPrompt(req.OriginalQuestion, req.EmployeeAnswer, role, company)

	llmCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.llm.Generate(llmCtx, followUpSystemPrompt, prompt)
	if err != nil {
		// Degrade, never surface: the employee proceeds to the next base question.
		log.Warn().Err(err).Str("employee_id", ident.UserID).Msg("Follow-up generation failed, continuing without follow-up")
		return &dto.FollowUpResponseDTO{HasFollowUp: false, Message: "No follow-up question needed"}, nil
	}

	s.audit(ident, resp.Model, prompt, resp.Content)

	text, ok := parseFollowUp(resp.Content)
	if !ok {
		return &dto.FollowUpResponseDTO{HasFollowUp: false, Message: "No follow-up question needed"}, nil
	}

	instance := &model.QuestionInstance{
		EmployeeID:       parent.EmployeeID,
		CompanyID:        parent.CompanyID,
		GeneratedText:    &text,
		ParentInstanceID: &parent.ID,
		Ordinal:          req.CurrentOrdinal + 1,
	}
	if err := s.instanceRepo.Create(instance); err != nil {
		log.Error().Err(err).Str("parent_instance", parent.ID.String()).Msg("Failed to persist follow-up instance")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create follow-up question", err)
	}

	log.Info().Str("employee_id", ident.UserID).Int("ordinal", instance.Ordinal).Msg("Follow-up question created")

	return &dto.FollowUpResponseDTO{
		HasFollowUp: true,
		FollowUpQuestion: &dto.FollowUpQuestionDTO{
			ID:             instance.ID,
			Text:           text,
			Ordinal:        instance.Ordinal,
			ParentInstance: parent.ID,
		},
	}, nil
}

// parseFollowUp interprets the raw model output. The sentinel (with any
// surrounding whitespace) and the empty string both mean "no follow-up";
// anything else is the follow-up question's literal text.
func parseFollowUp(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == noFollowUpSentinel {
		return "", false
	}
	return trimmed, true
}

func (s *followUpService) employeeContext(ident identity.Identity) (role, company string) {
	if user, err := s.userRepo.FindByID(ident.UserID); err == nil && user != nil && user.FullName != "" {
		role = user.FullName
	}
	if c, err := s.companyRepo.FindByID(ident.CompanyID); err == nil {
		company = c.Name
	}
	return role, company
}

// audit writes the prompt/response pair to the append-only log. Best-effort.
func (s *followUpService) audit(ident identity.Identity, modelName, prompt, response string) {
	entry := &model.PromptLog{
		CompanyID:  ident.CompanyID,
		EmployeeID: ident.UserID,
		Source:     model.PromptSourceQuestionSelection,
		Model:      modelName,
		Prompt:     prompt,
		Response:   response,
	}
	if err := s.promptLogRepo.Create(entry); err != nil {
		log.Error().Err(err).Msg("Failed to write prompt log entry")
	}
}
