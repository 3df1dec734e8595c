package model

import "time"

type Category struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(120);not null;uniqueIndex:idx_category_name"`
	CreatedAt time.Time
}

func (Category) TableName() string {
	return "categories"
}
