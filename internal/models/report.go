package models

import (
	"time"
)

type Report struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null"` // sales, inventory, customer
	Content     string    `json:"content" gorm:"type:json"`
	Filters     string    `json:"filters" gorm:"type:json"`
	GeneratedAt time.Time `json:"generated_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReportType string

const (
	ReportSales     ReportType = "sales"
	ReportInventory ReportType = "inventory"
	ReportCustomer  ReportType = "customer"
)
