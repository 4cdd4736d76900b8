package models

import "time"

// Staff and Admin live in separate tables so that email uniqueness is per variant.
type Staff struct {
	ID uint `gorm:"primaryKey" json:"staffId"`

	Name         string `gorm:"size:60;not null" json:"name"`
	Email        string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'staff'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Staff) TableName() string { return "staff" }

type Admin struct {
	ID uint `gorm:"primaryKey" json:"adminId"`

	Name         string `gorm:"size:60;not null" json:"name"`
	Email        string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'admin'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
