package model

import (
	"time"
)

// AdPerformance 广告单元按天聚合的投放数据
type AdPerformance struct {
	ID          uint64    `gorm:"primaryKey"`
	AdUnitID    uint64    `gorm:"not null;uniqueIndex:uk_unit_date" json:"adUnitId"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uk_unit_date" json:"date"`
	Impressions int64     `gorm:"default:0" json:"impressions"`
	Clicks      int64     `gorm:"default:0" json:"clicks"`
	CTR         float64   `gorm:"type:decimal(5,2);default:0" json:"ctr"`
	Revenue     float64   `gorm:"type:decimal(10,2);default:0" json:"revenue"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (AdPerformance) TableName() string {
	return "ad_performances"
}

// CalcCTR 点击率 = 点击数 / 展示数 * 100, 无展示时为 0
func CalcCTR(impressions, clicks int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}
