package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hoangnm/air-platform/internal/model"
	"gorm.io/gorm"
)

// ErrCatalogEmpty is returned when sequence initialization finds no active
// catalog questions. Fatal misconfiguration, surfaced to the caller.
var ErrCatalogEmpty = errors.New("no active questions in catalog")

type QuestionInstanceRepository interface {
	// InitializeFromCatalog creates one instance per active catalog question
	// for the employee, ordinals 1..N in catalog id order. Idempotent: if the
	// employee already has instances, it returns them unchanged. The write is
	// serialized per employee so two concurrent first visits cannot
	// double-initialize.
	InitializeFromCatalog(employeeID, companyID string) ([]model.QuestionInstance, error)
	FindByEmployeeID(employeeID string) ([]model.QuestionInstance, error)
	FindByID(id uuid.UUID) (*model.QuestionInstance, error)
	FindByCompanyID(companyID string) ([]model.QuestionInstance, error)
	Create(instance *model.QuestionInstance) error
}

type questionInstanceRepository struct {
	db *gorm.DB
}

func NewQuestionInstanceRepository(db *gorm.DB) QuestionInstanceRepository {
	return &questionInstanceRepository{db: db}
}

func (r *questionInstanceRepository) InitializeFromCatalog(employeeID, companyID string) ([]model.QuestionInstance, error) {
	var instances []model.QuestionInstance

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Advisory lock keyed by employee id guards the observe-then-insert
		// race between concurrent first visits. On non-Postgres dialects
		// (sqlite in tests) the transaction itself is the serialization.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", employeeID).Error; err != nil {
				return err
			}
		}

		var count int64
		if err := tx.Model(&model.QuestionInstance{}).Where("employee_id = ?", employeeID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return tx.Preload("Question").Where("employee_id = ?", employeeID).
				Order("ordinal ASC").Find(&instances).Error
		}

		var questions []model.Question
		if err := tx.Where("active = ?", true).Order("id ASC").Find(&questions).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return ErrCatalogEmpty
		}

		instances = make([]model.QuestionInstance, 0, len(questions))
		for i := range questions {
			qid := questions[i].ID
			instances = append(instances, model.QuestionInstance{
				EmployeeID: employeeID,
				CompanyID:  companyID,
				QuestionID: &qid,
				Ordinal:    i + 1,
			})
		}
		if err := tx.Create(&instances).Error; err != nil {
			return err
		}
		for i := range instances {
			instances[i].Question = &questions[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *questionInstanceRepository) FindByEmployeeID(employeeID string) ([]model.QuestionInstance, error) {
	var instances []model.QuestionInstance
	err := r.db.Preload("Question").
		Where("employee_id = ?", employeeID).
		Order("ordinal ASC, created_at ASC").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *questionInstanceRepository) FindByID(id uuid.UUID) (*model.QuestionInstance, error) {
	var instance model.QuestionInstance
	if err := r.db.Preload("Question").First(&instance, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &instance, nil
}

func (r *questionInstanceRepository) FindByCompanyID(companyID string) ([]model.QuestionInstance, error) {
	var instances []model.QuestionInstance
	err := r.db.Preload("Question").
		Where("company_id = ?", companyID).
		Order("employee_id ASC, ordinal ASC").
		Find(&instances).Error
	if err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *questionInstanceRepository) Create(instance *model.QuestionInstance) error {
	return r.db.Create(instance).Error
}
