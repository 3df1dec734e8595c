package dto

type PortfolioStatsDTO struct {
	TotalProjects  int64 `json:"total_projects"`
	TotalBlogPosts int64 `json:"total_blog_posts"`
	TotalViews     int64 `json:"total_views"`
	TotalLikes     int64 `json:"total_likes"`

	PopularProjects []*ProjectDTO  `json:"popular_projects"`
	RecentProjects  []*ProjectDTO  `json:"recent_projects"`
	PopularPosts    []*BlogPostDTO `json:"popular_posts"`
}
