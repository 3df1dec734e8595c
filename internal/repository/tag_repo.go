package repository

import (
	"Atelier/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagUsage 标签与已发布文章引用数
type TagUsage struct {
	ID        uint64
	Name      string
	Color     string
	PostCount int64
}

type TagRepo interface {
	GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error)
	GetAllTags(ctx context.Context) ([]*model.Tag, error)
	GetTagsByBlogPostID(ctx context.Context, postID uint64) ([]*model.Tag, error)
	GetPopularTags(ctx context.Context, limit int) ([]*TagUsage, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{
		db: db,
	}
}

func (s *tagRepoImpl) GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error) {
	// 创建所有标签，使用 OnConflict DoNothing 避免重复创建
	for _, tagName := range tagNames {
		tag := model.Tag{
			Name:      tagName,
			CreatedAt: time.Now(),
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error
		if err != nil {
			return nil, err
		}
	}

	// 查询所有请求的标签
	var tags []*model.Tag
	err := s.db.WithContext(ctx).Where("name IN ?", tagNames).Find(&tags).Error
	if err != nil {
		return nil, err
	}

	return tags, nil
}

func (s *tagRepoImpl) GetAllTags(ctx context.Context) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	err := s.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagRepoImpl) GetTagsByBlogPostID(ctx context.Context, postID uint64) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0)
	err := s.db.WithContext(ctx).Table("tags").
		Joins("JOIN blog_post_tags ON blog_post_tags.tag_id = tags.id").
		Where("blog_post_tags.blog_post_id = ?", postID).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GetPopularTags 按已发布文章引用数取热门标签
func (s *tagRepoImpl) GetPopularTags(ctx context.Context, limit int) ([]*TagUsage, error) {
	usages := make([]*TagUsage, 0)
	err := s.db.WithContext(ctx).Table("tags").
		Select("tags.id, tags.name, tags.color, COUNT(blog_post_tags.blog_post_id) AS post_count").
		Joins("JOIN blog_post_tags ON blog_post_tags.tag_id = tags.id").
		Joins("JOIN blog_posts ON blog_posts.id = blog_post_tags.blog_post_id AND blog_posts.is_published = ?", true).
		Group("tags.id").
		Order("post_count DESC").
		Limit(limit).
		Scan(&usages).Error
	if err != nil {
		return nil, err
	}
	return usages, nil
}
