package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hoangnm/air-platform/config"
	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/identity"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/hoangnm/air-platform/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// SurveyService is the survey progression engine: it owns per-employee
// question sequences, decides what to serve next, and records answers.
type SurveyService interface {
	// StartOrResume initializes the employee's sequence from the catalog on
	// first visit, then returns the next unanswered question and fresh
	// progress. Idempotent; returns the completed terminal state once every
	// instance has an answer.
	StartOrResume(ident identity.Identity) (*dto.SurveyStateDTO, error)
	// RecordAnswer creates or overwrites the single answer for an instance
	// the caller owns. Last write wins, no history.
	RecordAnswer(ident identity.Identity, req dto.SubmitAnswerDTO) (*dto.AnswerDTO, error)
}

type surveyService struct {
	instanceRepo repository.QuestionInstanceRepository
	answerRepo   repository.AnswerRepository
	maxAnswerLen int
}

func NewSurveyService(
	instanceRepo repository.QuestionInstanceRepository,
	answerRepo repository.AnswerRepository,
	cfg *config.Config,
) SurveyService {
	maxLen := cfg.Survey.MaxAnswerLength
	if maxLen <= 0 {
		maxLen = 2000
	}
	return &surveyService{
		instanceRepo: instanceRepo,
		answerRepo:   answerRepo,
		maxAnswerLen: maxLen,
	}
}

func (s *surveyService) StartOrResume(ident identity.Identity) (*dto.SurveyStateDTO, error) {
	if !ident.HasCompany() {
		return nil, apperr.New(apperr.KindNoCompanyAssociation, "No company association found")
	}

	instances, err := s.instanceRepo.FindByEmployeeID(ident.UserID)
	if err != nil {
		log.Error().Err(err).Str("employee_id", ident.UserID).Msg("StartOrResume: failed to load question instances")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to start survey", err)
	}

	if len(instances) == 0 {
		instances, err = s.instanceRepo.InitializeFromCatalog(ident.UserID, ident.CompanyID)
		if errors.Is(err, repository.ErrCatalogEmpty) {
			log.Error().Str("employee_id", ident.UserID).Msg("StartOrResume: question catalog is empty")
			return nil, apperr.Wrap(apperr.KindCatalogEmpty, "Question catalog is not configured", err)
		}
		if err != nil {
			log.Error().Err(err).Str("employee_id", ident.UserID).Msg("StartOrResume: sequence initialization failed")
			return nil, apperr.Wrap(apperr.KindInternal, "Failed to start survey", err)
		}
		log.Info().Str("employee_id", ident.UserID).Int("count", len(instances)).Msg("Initialized question sequence")
	}

	answered, err := s.answeredSet(ident.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to start survey", err)
	}

	next := nextUnanswered(instances, answered)
	total := len(instances)
	answeredCount := 0
	for _, inst := range instances {
		if _, ok := answered[inst.ID]; ok {
			answeredCount++
		}
	}

	if next == nil {
		return &dto.SurveyStateDTO{Completed: true, TotalQuestions: total}, nil
	}

	current := answeredCount + 1
	if current > total {
		current = total
	}

	return &dto.SurveyStateDTO{
		Completed: false,
		QuestionInstance: &dto.QuestionInstanceDTO{
			ID:             next.ID,
			Text:           next.DisplayText(),
			Dimension:      next.Dimension(),
			Ordinal:        next.Ordinal,
			IsFollowUp:     next.IsFollowUp(),
			ParentInstance: next.ParentInstanceID,
		},
		Progress: &dto.ProgressDTO{Current: current, Total: total},
	}, nil
}

func (s *surveyService) RecordAnswer(ident identity.Identity, req dto.SubmitAnswerDTO) (*dto.AnswerDTO, error) {
	if !ident.HasCompany() {
		return nil, apperr.New(apperr.KindNoCompanyAssociation, "No company association found")
	}
	if len(req.AnswerText) == 0 {
		return nil, apperr.New(apperr.KindValidation, "Answer cannot be empty")
	}
	if len(req.AnswerText) > s.maxAnswerLen {
		return nil, apperr.New(apperr.KindValidation, "Answer too long")
	}

	instance, err := s.instanceRepo.FindByID(req.QuestionInstanceID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindOwnership, "Question instance does not belong to you", err)
	}
	if instance.EmployeeID != ident.UserID {
		log.Warn().Str("employee_id", ident.UserID).Str("instance_id", instance.ID.String()).Msg("RecordAnswer: cross-employee access attempt")
		return nil, apperr.New(apperr.KindOwnership, "Question instance does not belong to you")
	}

	existing, err := s.answerRepo.FindByInstanceID(instance.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to save answer", err)
	}

	var answer *model.Answer
	if existing == nil {
		answer = &model.Answer{
			QuestionInstanceID: instance.ID,
			EmployeeID:         ident.UserID,
			CompanyID:          ident.CompanyID,
			AnswerText:         req.AnswerText,
		}
		err = s.answerRepo.Create(answer)
	} else {
		existing.AnswerText = req.AnswerText
		answer = existing
		err = s.answerRepo.Update(answer)
	}
	if err != nil {
		log.Error().Err(err).Str("instance_id", instance.ID.String()).Msg("RecordAnswer: failed to persist answer")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to save answer", err)
	}

	var answerDTO dto.AnswerDTO
	if err := copier.Copy(&answerDTO, answer); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to save answer", err)
	}
	return &answerDTO, nil
}

func (s *surveyService) answeredSet(employeeID string) (map[uuid.UUID]struct{}, error) {
	answers, err := s.answerRepo.FindByEmployeeID(employeeID)
	if err != nil {
		log.Error().Err(err).Str("employee_id", employeeID).Msg("Failed to load answers")
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(answers))
	for _, a := range answers {
		set[a.QuestionInstanceID] = struct{}{}
	}
	return set, nil
}

// nextUnanswered picks the question to serve. An unanswered follow-up whose
// parent is already answered jumps the queue (most recently created first), so
// a just-generated follow-up is asked before the remaining base questions.
// Otherwise the first unanswered instance in ordinal order wins. instances
// must already be sorted by ordinal.
func nextUnanswered(instances []model.QuestionInstance, answered map[uuid.UUID]struct{}) *model.QuestionInstance {
	var pending *model.QuestionInstance
	for i := range instances {
		inst := &instances[i]
		if _, ok := answered[inst.ID]; ok {
			continue
		}
		if inst.ParentInstanceID != nil {
			if _, parentDone := answered[*inst.ParentInstanceID]; parentDone {
				if pending == nil || inst.CreatedAt.After(pending.CreatedAt) {
					pending = inst
				}
			}
		}
	}
	if pending != nil {
		return pending
	}
	for i := range instances {
		if _, ok := answered[instances[i].ID]; !ok {
			return &instances[i]
		}
	}
	return nil
}
