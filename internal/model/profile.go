package model

import (
	"time"
)

type Profile struct {
	ID          uint64     `gorm:"primaryKey"`
	UserID      uint64     `gorm:"not null;uniqueIndex:idx_profile_user" json:"userId"`
	FullName    string     `gorm:"type:varchar(255)" json:"fullName"`
	Bio         string     `gorm:"type:text" json:"bio"`
	AvatarURL   string     `gorm:"type:varchar(500)" json:"avatarUrl"`
	Location    string     `gorm:"type:varchar(255)" json:"location"`
	Country     string     `gorm:"type:varchar(2)" json:"country"`
	City        string     `gorm:"type:varchar(255)" json:"city"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
