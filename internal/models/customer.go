package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"custId"`

	Name         string `gorm:"size:60;not null" json:"name"`
	Email        string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Address      string `gorm:"size:255" json:"address,omitempty"`
	Phone        string `gorm:"size:30" json:"phone,omitempty"`
	Role         string `gorm:"size:20;not null;default:'customer'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
