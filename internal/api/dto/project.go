package dto

type ProjectCreateDTO struct {
	Title        string   `json:"title" binding:"required,max=255"`
	CategoryID   *uint64  `json:"category_id"`
	Description  string   `json:"description" binding:"required"`
	ImageURL     string   `json:"image_url" binding:"omitempty,max=500"`
	ProjectURL   string   `json:"project_url" binding:"omitempty,max=500"`
	GithubURL    string   `json:"github_url" binding:"omitempty,max=500"`
	DemoURL      string   `json:"demo_url" binding:"omitempty,max=500"`
	Technologies string   `json:"technologies" binding:"omitempty,max=500"`
	Status       string   `json:"status" binding:"omitempty,oneof=in_progress completed paused archived"`
	Featured     bool     `json:"featured"`
	Tags         []string `json:"tags"`
}

type ProjectDTO struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	CategoryName string   `json:"category_name,omitempty"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	ProjectURL   string   `json:"project_url"`
	GithubURL    string   `json:"github_url"`
	DemoURL      string   `json:"demo_url"`
	Technologies []string `json:"technologies"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
	ViewsCount   int      `json:"views_count"`
	Tags         []string `json:"tags"`
	CreatedAt    string   `json:"created_at"`
}

// ProjectDetailDTO 项目详情, 附带交互状态
type ProjectDetailDTO struct {
	ProjectDTO
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	IsLiked      bool  `json:"is_liked"`
}

type ProjectListDTO struct {
	List  []*ProjectDTO `json:"list"`
	Total int64         `json:"total"`
}

type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type CategoryCreateDTO struct {
	Name string `json:"name" binding:"required,max=120"`
}

type TagDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
