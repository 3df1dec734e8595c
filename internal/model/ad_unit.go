package model

import (
	"strings"
	"time"

	"Atelier/internal/pkg/consts"
)

type AdUnit struct {
	ID             uint64    `gorm:"primaryKey"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	AdUnitID       string    `gorm:"type:varchar(50);not null" json:"adUnitId"`
	AdType         string    `gorm:"type:varchar(20);not null;default:'display'" json:"adType"`
	AdSize         string    `gorm:"type:varchar(20);not null;default:'responsive'" json:"adSize"`
	CustomWidth    int       `gorm:"default:0" json:"customWidth"`
	CustomHeight   int       `gorm:"default:0" json:"customHeight"`
	Position       string    `gorm:"type:varchar(30);not null;index" json:"position"`
	IsActive       bool      `gorm:"default:1" json:"isActive"`
	ShowOnMobile   bool      `gorm:"default:1" json:"showOnMobile"`
	ShowOnDesktop  bool      `gorm:"default:1" json:"showOnDesktop"`
	PagesToShow    string    `gorm:"type:varchar(500)" json:"pagesToShow"`
	PagesToExclude string    `gorm:"type:varchar(500)" json:"pagesToExclude"`
	CustomCSS      string    `gorm:"type:text" json:"customCss"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (AdUnit) TableName() string {
	return "ad_units"
}

// MatchesDevice 按设备开关判断是否可投放
func (a *AdUnit) MatchesDevice(device string) bool {
	if device == consts.DeviceMobile {
		return a.ShowOnMobile
	}
	return a.ShowOnDesktop
}

// MatchesPage 先匹配排除列表再匹配包含列表, 列表为逗号分隔的路径子串
func (a *AdUnit) MatchesPage(path string) bool {
	for _, pattern := range splitPatterns(a.PagesToExclude) {
		if strings.Contains(path, pattern) {
			return false
		}
	}
	include := splitPatterns(a.PagesToShow)
	if len(include) == 0 {
		return true
	}
	for _, pattern := range include {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

func splitPatterns(raw string) []string {
	var result []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
