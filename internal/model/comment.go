package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	ProjectID uint64    `gorm:"not null;index:idx_comment_project" json:"projectId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Text      string    `gorm:"type:varchar(5000);not null" json:"text"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"imageUrl"`
	ParentID  uint64    `gorm:"not null;default:0;index:idx_comment_parent" json:"parentId"` // 0表示这是一级评论
	IsEdited  bool      `gorm:"type:tinyint(1);not null;default:0" json:"isEdited"`
	IsDeleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsReply 是否为二级评论
func (c *Comment) IsReply() bool {
	return c.ParentID != 0
}
