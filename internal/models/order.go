package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	CustomerID      uint           `json:"customer_id" gorm:"not null;index"`
	OrderNumber     string         `json:"order_number" gorm:"unique;not null"`
	Status          string         `json:"status" gorm:"default:'pending'"` // pending, processing, shipped, delivered, cancelled
	TotalAmount     float64        `json:"total_amount" gorm:"not null"`
	OrderDate       time.Time      `json:"order_date" gorm:"not null"`
	DeliveryDate    *time.Time     `json:"delivery_date"`
	ShippingAddress string         `json:"shipping_address"`
	PaymentMethod   string         `json:"payment_method"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	Customer   *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)
