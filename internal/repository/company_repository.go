package repository

import (
	"errors"

	"github.com/hoangnm/air-platform/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *model.Company) error
	Update(company *model.Company) error
	FindByID(id string) (*model.Company, error)
	FindByDomain(domain string) (*model.Company, error)
	FindByInviteCode(code string) (*model.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) Update(company *model.Company) error {
	return r.db.Save(company).Error
}

func (r *companyRepository) FindByID(id string) (*model.Company, error) {
	var company model.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// FindByDomain returns (nil, nil) when no company uses the domain.
func (r *companyRepository) FindByDomain(domain string) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, "domain = ?", domain).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByInviteCode(code string) (*model.Company, error) {
	var company model.Company
	if err := r.db.First(&company, "invite_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &company, nil
}
