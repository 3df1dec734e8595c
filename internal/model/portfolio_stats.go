package model

import (
	"time"
)

// PortfolioStats 全站统计快照, 单行记录, 读取时重算后落库
type PortfolioStats struct {
	ID             uint64    `gorm:"primaryKey"`
	TotalProjects  int64     `gorm:"default:0" json:"totalProjects"`
	TotalBlogPosts int64     `gorm:"default:0" json:"totalBlogPosts"`
	TotalViews     int64     `gorm:"default:0" json:"totalViews"`
	TotalLikes     int64     `gorm:"default:0" json:"totalLikes"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (PortfolioStats) TableName() string {
	return "portfolio_stats"
}
