package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	Name       string         `json:"name" gorm:"not null"`
	Email      string         `json:"email" gorm:"not null;index"`
	Phone      string         `json:"phone"`
	Address    string         `json:"address"`
	City       string         `json:"city"`
	Country    string         `json:"country"`
	Status     string         `json:"status" gorm:"default:'active'"` // active, inactive, vip
	TotalSpent float64        `json:"total_spent" gorm:"default:0"`
	LastOrder  *time.Time     `json:"last_order"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerVIP      CustomerStatus = "vip"
)
