package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/pkg/minio"
	"Atelier/internal/pkg/util"
	"Atelier/internal/repository"
	"context"
	"fmt"
	"time"
)

type BlogService interface {
	CreateBlogPost(ctx context.Context, req *dto.BlogPostCreateDTO) (uint64, error)
	UpdateBlogPost(ctx context.Context, postID uint64, req *dto.BlogPostCreateDTO) error
	DeleteBlogPost(ctx context.Context, postID uint64) error
	GetBlogPostBySlug(ctx context.Context, slug string) (*dto.BlogDetailDTO, error)
	GetPublishedPosts(ctx context.Context, tag, keyword string, page, pageSize int) (*dto.BlogListDTO, error)
	GetPopularTags(ctx context.Context, limit int) ([]*dto.PopularTagDTO, error)
}

type blogServiceImpl struct {
	blogRepo repository.BlogRepo
	tagRepo  repository.TagRepo
}

func NewBlogService(blogRepo repository.BlogRepo, tagRepo repository.TagRepo) BlogService {
	return &blogServiceImpl{
		blogRepo: blogRepo,
		tagRepo:  tagRepo,
	}
}

func (s *blogServiceImpl) CreateBlogPost(ctx context.Context, req *dto.BlogPostCreateDTO) (uint64, error) {
	slug, err := s.generateSlug(ctx, req.Title)
	if err != nil {
		return 0, err
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.Tags)
	if err != nil {
		return 0, err
	}

	post := &model.BlogPost{
		Title:       req.Title,
		Slug:        slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		ImageURL:    req.ImageURL,
		IsPublished: true,
		PublishedAt: time.Now(),
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}

	if err := s.blogRepo.CreateBlogPost(ctx, post, tagIDs); err != nil {
		return 0, err
	}
	return post.ID, nil
}

func (s *blogServiceImpl) UpdateBlogPost(ctx context.Context, postID uint64, req *dto.BlogPostCreateDTO) error {
	existing, err := s.blogRepo.GetBlogPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBlogPostNotFound
	}

	tagIDs, err := s.resolveTagIDs(ctx, req.Tags)
	if err != nil {
		return err
	}

	post := &model.BlogPost{
		ID:       postID,
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		ImageURL: req.ImageURL,
	}
	post.IsPublished = existing.IsPublished
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}

	return s.blogRepo.UpdateBlogPost(ctx, post, tagIDs)
}

func (s *blogServiceImpl) DeleteBlogPost(ctx context.Context, postID uint64) error {
	existing, err := s.blogRepo.GetBlogPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBlogPostNotFound
	}
	return s.blogRepo.DeleteBlogPost(ctx, postID)
}

// GetBlogPostBySlug 文章详情, 访问即计数, 附带共享标签的相关文章
func (s *blogServiceImpl) GetBlogPostBySlug(ctx context.Context, slug string) (*dto.BlogDetailDTO, error) {
	post, err := s.blogRepo.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.IsPublished {
		return nil, ErrBlogPostNotFound
	}

	_ = s.blogRepo.IncrementViews(ctx, post.ID)
	post.ViewsCount++

	detail := &dto.BlogDetailDTO{BlogPostDTO: *convertToBlogPostDTO(post, true)}

	related, err := s.blogRepo.GetRelatedPosts(ctx, post.ID, 3)
	if err == nil {
		for _, rp := range related {
			detail.Related = append(detail.Related, convertToBlogPostDTO(rp, false))
		}
	}
	return detail, nil
}

func (s *blogServiceImpl) GetPublishedPosts(ctx context.Context, tag, keyword string, page, pageSize int) (*dto.BlogListDTO, error) {
	posts, total, err := s.blogRepo.GetPublishedPosts(ctx, tag, keyword, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.BlogPostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, convertToBlogPostDTO(post, false))
	}
	return &dto.BlogListDTO{List: list, Total: total}, nil
}

func (s *blogServiceImpl) GetPopularTags(ctx context.Context, limit int) ([]*dto.PopularTagDTO, error) {
	usages, err := s.tagRepo.GetPopularTags(ctx, limit)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PopularTagDTO, 0, len(usages))
	for _, usage := range usages {
		res = append(res, &dto.PopularTagDTO{
			ID:        usage.ID,
			Name:      usage.Name,
			Color:     usage.Color,
			PostCount: usage.PostCount,
		})
	}
	return res, nil
}

// generateSlug 由标题生成 slug, 冲突时追加 -N 直到唯一
func (s *blogServiceImpl) generateSlug(ctx context.Context, title string) (string, error) {
	base := util.Slugify(title)
	if base == "" {
		base = "post"
	}

	slug := base
	counter := 1
	for {
		exists, err := s.blogRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}

func (s *blogServiceImpl) resolveTagIDs(ctx context.Context, tagNames []string) ([]uint64, error) {
	if len(tagNames) == 0 {
		return nil, nil
	}
	tags, err := s.tagRepo.GetOrCreateTags(ctx, tagNames)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func convertToBlogPostDTO(post *model.BlogPost, withContent bool) *dto.BlogPostDTO {
	item := &dto.BlogPostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		ImageURL:    minio.GetPublicURL(post.ImageURL),
		IsPublished: post.IsPublished,
		ViewsCount:  post.ViewsCount,
		PublishedAt: post.PublishedAt.Format("2006-01-02 15:04:05"),
	}
	if withContent {
		item.Content = post.Content
	}
	for _, tag := range post.Tags {
		item.Tags = append(item.Tags, tag.Name)
	}
	return item
}
