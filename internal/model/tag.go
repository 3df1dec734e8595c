package model

import "time"

type Tag struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_tag_name"`
	Color     string `gorm:"type:varchar(7);not null;default:'#007bff'"` // 十六进制颜色
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}
