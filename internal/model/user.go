package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Username  string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username"`
	Email     *string `gorm:"type:varchar(255);uniqueIndex:idx_email"`
	Password  string  `gorm:"type:varchar(255);not null"`
	IsStaff   bool    `gorm:"type:tinyint(1);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile Profile `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
