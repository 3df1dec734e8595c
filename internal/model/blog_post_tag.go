package model

type BlogPostTag struct {
	BlogPostID uint64 `gorm:"primaryKey" json:"blogPostId"`
	TagID      uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tagId"`
}

func (BlogPostTag) TableName() string {
	return "blog_post_tags"
}
