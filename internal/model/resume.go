package model

import (
	"time"
)

type Resume struct {
	ID            uint64    `gorm:"primaryKey"`
	Title         string    `gorm:"type:varchar(100);not null" json:"title"`
	FileKey       string    `gorm:"type:varchar(500);not null" json:"fileKey"` // MinIO 对象名
	Language      string    `gorm:"type:varchar(10);not null;default:'en'" json:"language"`
	IsActive      bool      `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	DownloadCount int       `gorm:"not null;default:0" json:"downloadCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Resume) TableName() string {
	return "resumes"
}
