package repository

import (
	"github.com/hoangnm/air-platform/internal/model"
	"gorm.io/gorm"
)

type PromptLogRepository interface {
	Create(entry *model.PromptLog) error
}

type promptLogRepository struct {
	db *gorm.DB
}

func NewPromptLogRepository(db *gorm.DB) PromptLogRepository {
	return &promptLogRepository{db: db}
}

func (r *promptLogRepository) Create(entry *model.PromptLog) error {
	return r.db.Create(entry).Error
}
