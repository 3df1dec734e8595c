package model

import (
	"time"
)

type Project struct {
	ID           uint64    `gorm:"primaryKey"`
	UserID       uint64    `gorm:"not null;index:idx_project_user" json:"userId"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	CategoryID   *uint64   `gorm:"index:idx_project_category" json:"categoryId"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ImageURL     string    `gorm:"type:varchar(500)" json:"imageUrl"`
	ProjectURL   string    `gorm:"type:varchar(500)" json:"projectUrl"`
	GithubURL    string    `gorm:"type:varchar(500)" json:"githubUrl"`
	DemoURL      string    `gorm:"type:varchar(500)" json:"demoUrl"`
	Technologies string    `gorm:"type:varchar(500)" json:"technologies"` // 逗号分隔
	Status       string    `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	Featured     bool      `gorm:"type:tinyint(1);not null;default:0" json:"featured"`
	ViewsCount   int       `gorm:"not null;default:0" json:"viewsCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []Tag     `gorm:"many2many:project_tags;"`
}

func (Project) TableName() string {
	return "projects"
}
