package dto

// CommentCreateDTO 创建评论请求, parent_id 为 0 时是一级评论
type CommentCreateDTO struct {
	ProjectID uint64 `json:"project_id" binding:"required"`
	Text      string `json:"text" binding:"omitempty,max=5000"`
	ImageURL  string `json:"image_url" binding:"omitempty,max=500"`
	ParentID  uint64 `json:"parent_id"`
}

type CommentUpdateDTO struct {
	Text string `json:"text" binding:"required,max=5000"`
}

// CommentDTO 评论返回详情
type CommentDTO struct {
	ID         uint64 `json:"id"`
	ProjectID  uint64 `json:"project_id"`
	UserID     uint64 `json:"user_id"`
	Username   string `json:"username"`
	AvatarURL  string `json:"avatar_url"`
	Text       string `json:"text"`
	ImageURL   string `json:"image_url"`
	ParentID   uint64 `json:"parent_id"`
	IsEdited   bool   `json:"is_edited"`
	IsDeleted  bool   `json:"is_deleted"`
	LikesCount int64  `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
	CreatedAt  string `json:"created_at"`

	Replies    []*CommentDTO `json:"replies"`
	ReplyCount int64         `json:"reply_count"`
}

// LikeStateDTO 点赞开关后的最新状态
type LikeStateDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
