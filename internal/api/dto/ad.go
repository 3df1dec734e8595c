package dto

type AdConfigDTO struct {
	PublisherID string `json:"publisher_id"`
	IsActive    bool   `json:"is_active"`
	AutoAds     bool   `json:"auto_ads"`
	TestMode    bool   `json:"test_mode"`
}

type AdConfigUpdateDTO struct {
	PublisherID *string `json:"publisher_id" binding:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
	AutoAds     *bool   `json:"auto_ads"`
	TestMode    *bool   `json:"test_mode"`
}

type AdUnitCreateDTO struct {
	Name           string `json:"name" binding:"required,max=100"`
	AdUnitID       string `json:"ad_unit_id" binding:"required,max=50"`
	AdType         string `json:"ad_type" binding:"omitempty,oneof=display in_article in_feed multiplex"`
	AdSize         string `json:"ad_size" binding:"omitempty,max=20"`
	CustomWidth    int    `json:"custom_width" binding:"omitempty,min=0"`
	CustomHeight   int    `json:"custom_height" binding:"omitempty,min=0"`
	Position       string `json:"position" binding:"required,oneof=header sidebar content_top content_middle content_bottom footer between_posts popup"`
	IsActive       *bool  `json:"is_active"`
	ShowOnMobile   *bool  `json:"show_on_mobile"`
	ShowOnDesktop  *bool  `json:"show_on_desktop"`
	PagesToShow    string `json:"pages_to_show" binding:"omitempty,max=500"`
	PagesToExclude string `json:"pages_to_exclude" binding:"omitempty,max=500"`
	CustomCSS      string `json:"custom_css"`
}

type AdUnitDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	AdUnitID       string `json:"ad_unit_id"`
	AdType         string `json:"ad_type"`
	AdSize         string `json:"ad_size"`
	CustomWidth    int    `json:"custom_width"`
	CustomHeight   int    `json:"custom_height"`
	Position       string `json:"position"`
	IsActive       bool   `json:"is_active"`
	ShowOnMobile   bool   `json:"show_on_mobile"`
	ShowOnDesktop  bool   `json:"show_on_desktop"`
	PagesToShow    string `json:"pages_to_show"`
	PagesToExclude string `json:"pages_to_exclude"`
	CustomCSS      string `json:"custom_css"`
}

// AdServeDTO 投放响应, 带上渲染所需的发布者信息
type AdServeDTO struct {
	PublisherID string     `json:"publisher_id"`
	TestMode    bool       `json:"test_mode"`
	Unit        *AdUnitDTO `json:"unit"`
}

type AdPerformanceDTO struct {
	AdUnitID    uint64  `json:"ad_unit_id"`
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Revenue     float64 `json:"revenue"`
}
