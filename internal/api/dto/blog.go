package dto

type BlogPostCreateDTO struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Content     string   `json:"content" binding:"required"`
	Excerpt     string   `json:"excerpt" binding:"omitempty,max=300"`
	ImageURL    string   `json:"image_url" binding:"omitempty,max=500"`
	IsPublished *bool    `json:"is_published"`
	Tags        []string `json:"tags"`
}

type BlogPostDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content,omitempty"`
	Excerpt     string   `json:"excerpt"`
	ImageURL    string   `json:"image_url"`
	IsPublished bool     `json:"is_published"`
	ViewsCount  int      `json:"views_count"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"published_at"`
}

type BlogListDTO struct {
	List  []*BlogPostDTO `json:"list"`
	Total int64          `json:"total"`
}

// BlogDetailDTO 文章详情, 附带相关文章
type BlogDetailDTO struct {
	BlogPostDTO
	Related []*BlogPostDTO `json:"related"`
}

// PopularTagDTO 热门标签及其文章数
type PopularTagDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	PostCount int64  `json:"post_count"`
}
