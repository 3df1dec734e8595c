package model

import (
	"time"
)

type BlogPost struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string    `gorm:"type:varchar(220);not null;uniqueIndex:idx_blog_slug" json:"slug"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Excerpt     string    `gorm:"type:varchar(300)" json:"excerpt"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"imageUrl"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"isPublished"`
	ViewsCount  int       `gorm:"not null;default:0" json:"viewsCount"`
	PublishedAt time.Time `json:"publishedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Tags []Tag `gorm:"many2many:blog_post_tags;"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
