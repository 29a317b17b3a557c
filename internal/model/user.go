package model

import "time"

type User struct {
	ID          string     `gorm:"primarykey" json:"id"` // identity provider subject
	CompanyID   string     `json:"company_id" gorm:"not null;index"`
	Role        string     `json:"role" gorm:"not null"` // "manager" or "employee"
	Email       string     `json:"email" gorm:"not null"`
	FullName    string     `json:"full_name,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
