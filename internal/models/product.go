package models

import "time"

type Product struct {
	ID uint `gorm:"primaryKey" json:"productId"`

	Name  string  `gorm:"size:30;not null" json:"name"`
	Price float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock int     `gorm:"not null;default:0" json:"stock"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
