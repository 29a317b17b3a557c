package repository

import (
	"github.com/hoangnm/air-platform/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindActive() ([]model.Question, error)
	FindByID(id uint) (*model.Question, error)
	CreateBatch(questions []model.Question) error
	FindOrCreateModule(name string) (*model.Module, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindActive returns the active catalog in id order, the order sequence
// initialization assigns ordinals in.
func (r *questionRepository) FindActive() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("active = ?", true).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) CreateBatch(questions []model.Question) error {
	return r.db.Create(&questions).Error
}

func (r *questionRepository) FindOrCreateModule(name string) (*model.Module, error) {
	var module model.Module
	if err := r.db.Where("name = ?", name).FirstOrCreate(&module, model.Module{Name: name}).Error; err != nil {
		return nil, err
	}
	return &module, nil
}
