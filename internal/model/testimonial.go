package model

import (
	"time"
)

type Testimonial struct {
	ID         uint64    `gorm:"primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Position   string    `gorm:"type:varchar(100);not null" json:"position"`
	Company    string    `gorm:"type:varchar(100)" json:"company"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	PhotoURL   string    `gorm:"type:varchar(500)" json:"photoUrl"`
	Rating     int       `gorm:"not null;default:5" json:"rating"` // 1~5
	IsFeatured bool      `gorm:"type:tinyint(1);not null;default:0" json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
