package model

import "time"

type Company struct {
	ID         string    `gorm:"primarykey" json:"id"` // "comp_<hex>", assigned at registration
	Name       string    `json:"name" gorm:"not null"`
	Domain     string    `json:"domain" gorm:"not null;uniqueIndex"`
	Headcount  int       `json:"headcount,omitempty"`
	Industry   string    `json:"industry,omitempty"`
	Region     string    `json:"region,omitempty"`
	InviteCode string    `json:"invite_code,omitempty" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
}
