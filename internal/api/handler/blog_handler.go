package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogSvc service.BlogService
}

func NewBlogHandler(blogSvc service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogSvc: blogSvc,
	}
}

// GetPopularTags 被引用最多的标签
func (s *BlogHandler) GetPopularTags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	list, err := s.blogSvc.GetPopularTags(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetPosts 已发布文章列表, 支持标签与关键字过滤
func (s *BlogHandler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	list, err := s.blogSvc.GetPublishedPosts(c.Request.Context(), c.Query("tag"), c.Query("keyword"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetPostBySlug 文章详情, 访问即计浏览数
func (s *BlogHandler) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	detail, err := s.blogSvc.GetBlogPostBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// CreatePost 新建文章, slug 自动生成并去重
func (s *BlogHandler) CreatePost(c *gin.Context) {
	var req dto.BlogPostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.blogSvc.CreateBlogPost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// UpdatePost 更新文章, slug 保持不变
func (s *BlogHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.BlogPostCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.blogSvc.UpdateBlogPost(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeletePost 删除文章
func (s *BlogHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.blogSvc.DeleteBlogPost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
