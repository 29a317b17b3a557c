package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hoangnm/air-platform/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByInstanceID(instanceID uuid.UUID) (*model.Answer, error)
	FindByEmployeeID(employeeID string) ([]model.Answer, error)
	FindByCompanyID(companyID string) ([]model.Answer, error)
	Create(answer *model.Answer) error
	Update(answer *model.Answer) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// FindByInstanceID returns (nil, nil) when no answer exists yet; the caller
// distinguishes create from overwrite.
func (r *answerRepository) FindByInstanceID(instanceID uuid.UUID) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.First(&answer, "question_instance_id = ?", instanceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepository) FindByEmployeeID(employeeID string) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("employee_id = ?", employeeID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) FindByCompanyID(companyID string) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.Where("company_id = ?", companyID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) Create(answer *model.Answer) error {
	return r.db.Create(answer).Error
}

func (r *answerRepository) Update(answer *model.Answer) error {
	return r.db.Save(answer).Error
}
