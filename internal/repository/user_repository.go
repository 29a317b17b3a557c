package repository

import (
	"errors"

	"github.com/hoangnm/air-platform/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Upsert(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindEmployeesByCompanyID(companyID string) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(user *model.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"company_id", "role", "email", "full_name", "last_login_at"}),
	}).Create(user).Error
}

// FindByID returns (nil, nil) when the user has no record yet.
func (r *userRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindEmployeesByCompanyID(companyID string) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("company_id = ? AND role = ?", companyID, "employee").
		Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
