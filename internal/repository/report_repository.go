package repository

import (
	"github.com/hoangnm/air-platform/internal/model"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *model.Report) error
	CreateScores(scores []model.ReportScore) error
	FindBySlug(slug string) (*model.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *model.Report) error {
	return r.db.Create(report).Error
}

func (r *reportRepository) CreateScores(scores []model.ReportScore) error {
	return r.db.Create(&scores).Error
}

func (r *reportRepository) FindBySlug(slug string) (*model.Report, error) {
	var report model.Report
	if err := r.db.First(&report, "shared_slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
