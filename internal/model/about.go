package model

import (
	"time"
)

type About struct {
	ID          uint64    `gorm:"primaryKey"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PhotoURL    string    `gorm:"type:varchar(500)" json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (About) TableName() string {
	return "about"
}
