package model

import (
	"time"
)

// AdSenseConfig 站点级广告配置, 固定单行 id=1
type AdSenseConfig struct {
	ID          uint64    `gorm:"primaryKey"`
	PublisherID string    `gorm:"type:varchar(50);not null;default:'ca-pub-0000000000000000'" json:"publisherId"`
	IsActive    bool      `gorm:"default:0" json:"isActive"`
	AutoAds     bool      `gorm:"default:0" json:"autoAds"`
	TestMode    bool      `gorm:"default:1" json:"testMode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AdSenseConfig) TableName() string {
	return "adsense_configs"
}
