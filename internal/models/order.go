package models

import "time"

// Order references its customer by a plain integer column; there is no cascade.
type Order struct {
	ID uint `gorm:"primaryKey" json:"orderId"`

	CustID uint    `gorm:"column:cust_id;index;not null" json:"custId"`
	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	Total  float64 `gorm:"type:numeric(10,2);not null;default:0" json:"total"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
