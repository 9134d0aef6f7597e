package models

import (
	"time"
)

type Activity struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Week      string    `json:"week" gorm:"not null"`
	Guest     int       `json:"guest"`
	UserCount int       `json:"user_count"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
