package models

import (
	"time"
)

type UserSettings struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"user_id" gorm:"unique;not null"`
	Theme              string    `json:"theme" gorm:"default:'light'"`
	Language           string    `json:"language" gorm:"default:'en'"`
	EmailNotifications bool      `json:"email_notifications" gorm:"default:true"`
	PushNotifications  bool      `json:"push_notifications" gorm:"default:true"`
	DashboardLayout    string    `json:"dashboard_layout" gorm:"type:json"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultDashboardLayout is the widget grid a new account starts with.
const DefaultDashboardLayout = `{"metrics":{"x":0,"y":0,"w":4,"h":2},"activities":{"x":0,"y":2,"w":2,"h":3},"products":{"x":2,"y":2,"w":2,"h":3}}`
