package model

import (
	"time"
)

type ProjectLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	ProjectID uint64    `gorm:"primaryKey;index:idx_project_id" json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ProjectLike) TableName() string {
	return "project_likes"
}
