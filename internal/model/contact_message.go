package model

import (
	"time"
)

type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(254);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:0" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
