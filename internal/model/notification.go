package model

import (
	"time"
)

type Notification struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_notification_user" json:"userId"`
	Message   string    `gorm:"type:varchar(255);not null" json:"message"`
	Link      string    `gorm:"type:varchar(500)" json:"link"`
	IsRead    bool      `gorm:"type:tinyint(1);not null;default:0" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
