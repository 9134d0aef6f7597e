package models

import (
	"time"

	"gorm.io/gorm"
)

// Product.Price is nullable: nil means free/unset. Product.Stock is
// nullable: nil means the quantity is not tracked.
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	Percentage  float64        `json:"percentage"`
	Color       string         `json:"color"`
	Price       *float64       `json:"price"`
	Category    string         `json:"category"`
	Stock       *int           `json:"stock"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
