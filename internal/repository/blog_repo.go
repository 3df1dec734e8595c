package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BlogRepo interface {
	CreateBlogPost(ctx context.Context, post *model.BlogPost, tagIDs []uint64) error
	UpdateBlogPost(ctx context.Context, post *model.BlogPost, tagIDs []uint64) error
	DeleteBlogPost(ctx context.Context, id uint64) error
	GetBlogPostByID(ctx context.Context, id uint64) (*model.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetPublishedPosts(ctx context.Context, tag, keyword string, limit, offset int) ([]*model.BlogPost, int64, error)
	GetRelatedPosts(ctx context.Context, postID uint64, limit int) ([]*model.BlogPost, error)
	GetPopularPosts(ctx context.Context, limit int) ([]*model.BlogPost, error)
	IncrementViews(ctx context.Context, id uint64) error
	CountPublishedPosts(ctx context.Context) (int64, error)
	SumBlogViews(ctx context.Context) (int64, error)
}

type BlogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) BlogRepo {
	return &BlogRepoImpl{db: db}
}

func (s *BlogRepoImpl) CreateBlogPost(ctx context.Context, post *model.BlogPost, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit("Tags").Create(post); result.Error != nil {
			return result.Error
		}

		for _, tagID := range tagIDs {
			bt := &model.BlogPostTag{BlogPostID: post.ID, TagID: tagID}
			if result := tx.Create(bt); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

func (s *BlogRepoImpl) UpdateBlogPost(ctx context.Context, post *model.BlogPost, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := []string{"title", "content", "excerpt", "image_url", "is_published"}
		result := tx.Model(&model.BlogPost{}).
			Where("id = ?", post.ID).
			Select(fields).
			Updates(post)
		if result.Error != nil {
			return result.Error
		}

		if result := tx.Where("blog_post_id = ?", post.ID).Delete(&model.BlogPostTag{}); result.Error != nil {
			return result.Error
		}
		for _, tagID := range tagIDs {
			bt := &model.BlogPostTag{BlogPostID: post.ID, TagID: tagID}
			if result := tx.Create(bt); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

func (s *BlogRepoImpl) DeleteBlogPost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("blog_post_id = ?", id).Delete(&model.BlogPostTag{}); result.Error != nil {
			return result.Error
		}
		return tx.Delete(&model.BlogPost{}, id).Error
	})
}

func (s *BlogRepoImpl) GetBlogPostByID(ctx context.Context, id uint64) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	result := s.db.WithContext(ctx).
		Preload("Tags").
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *BlogRepoImpl) GetBlogPostBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	result := s.db.WithContext(ctx).
		Preload("Tags").
		Where("slug = ?", slug).
		First(post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *BlogRepoImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// GetPublishedPosts 分页获取已发布的文章, tag/keyword 非空时过滤
func (s *BlogRepoImpl) GetPublishedPosts(ctx context.Context, tag, keyword string, limit, offset int) ([]*model.BlogPost, int64, error) {
	posts := make([]*model.BlogPost, 0)

	db := s.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("is_published = ?", true)
	if tag != "" {
		db = db.Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
			Joins("JOIN tags ON tags.id = blog_post_tags.tag_id").
			Where("tags.name = ?", tag)
	}
	if keyword != "" {
		like := "%" + keyword + "%"
		db = db.Where("blog_posts.title LIKE ? OR blog_posts.content LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := db.
		Preload("Tags").
		Order("published_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return posts, total, nil
}

// GetRelatedPosts 按共享标签数取相关文章
func (s *BlogRepoImpl) GetRelatedPosts(ctx context.Context, postID uint64, limit int) ([]*model.BlogPost, error) {
	posts := make([]*model.BlogPost, 0)
	result := s.db.WithContext(ctx).
		Table("blog_posts").
		Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
		Where("blog_post_tags.tag_id IN (?)",
			s.db.Table("blog_post_tags").Select("tag_id").Where("blog_post_id = ?", postID)).
		Where("blog_posts.id != ? AND blog_posts.is_published = ?", postID, true).
		Group("blog_posts.id").
		Order("COUNT(blog_post_tags.tag_id) DESC, blog_posts.published_at DESC").
		Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *BlogRepoImpl) GetPopularPosts(ctx context.Context, limit int) ([]*model.BlogPost, error) {
	posts := make([]*model.BlogPost, 0)
	result := s.db.WithContext(ctx).
		Preload("Tags").
		Where("is_published = ?", true).
		Order("views_count DESC").
		Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *BlogRepoImpl) IncrementViews(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (s *BlogRepoImpl) CountPublishedPosts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.BlogPost{}).
		Where("is_published = ?", true).
		Count(&count).Error
	return count, err
}

func (s *BlogRepoImpl) SumBlogViews(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.BlogPost{}).
		Select("COALESCE(SUM(views_count), 0)").
		Scan(&total).Error
	return total, err
}
