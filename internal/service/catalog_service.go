package service

import (
	"github.com/hoangnm/air-platform/internal/apperr"
	"github.com/hoangnm/air-platform/internal/dto"
	"github.com/hoangnm/air-platform/internal/model"
	"github.com/hoangnm/air-platform/internal/repository"
	"github.com/rs/zerolog/log"
)

// CatalogService seeds the question catalog. Administrative only; the survey
// engine never writes to the catalog.
type CatalogService interface {
	Seed(req dto.CatalogSeedDTO) (*dto.CatalogSeedResponseDTO, error)
}

type catalogService struct {
	questionRepo repository.QuestionRepository
}

func NewCatalogService(questionRepo repository.QuestionRepository) CatalogService {
	return &catalogService{questionRepo: questionRepo}
}

func (s *catalogService) Seed(req dto.CatalogSeedDTO) (*dto.CatalogSeedResponseDTO, error) {
	validDimensions := make(map[string]struct{}, len(model.CatalogDimensions))
	for _, d := range model.CatalogDimensions {
		validDimensions[d] = struct{}{}
	}

	moduleIDs := map[string]uint{}
	questions := make([]model.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if _, ok := validDimensions[q.Dimension]; !ok {
			return nil, apperr.New(apperr.KindValidation, "Unknown dimension tag: "+q.Dimension)
		}
		moduleID, ok := moduleIDs[q.ModuleName]
		if !ok {
			module, err := s.questionRepo.FindOrCreateModule(q.ModuleName)
			if err != nil {
				log.Error().Err(err).Str("module", q.ModuleName).Msg("Failed to create module")
				return nil, apperr.Wrap(apperr.KindInternal, "Failed to seed catalog", err)
			}
			moduleID = module.ID
			moduleIDs[q.ModuleName] = moduleID
		}

		active := true
		if q.Active != nil {
			active = *q.Active
		}
		questions = append(questions, model.Question{
			ModuleID:  moduleID,
			Dimension: q.Dimension,
			Text:      q.Text,
			Active:    active,
		})
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Int("count", len(questions)).Msg("Catalog seed failed")
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to seed catalog", err)
	}

	log.Info().Int("questions", len(questions)).Int("modules", len(moduleIDs)).Msg("Catalog seeded")
	return &dto.CatalogSeedResponseDTO{Created: len(questions), Modules: len(moduleIDs)}, nil
}
