package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/response"
	"Atelier/internal/repository"
	"Atelier/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectSvc service.ProjectService
}

func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectSvc: projectSvc,
	}
}

// GetProjects 项目列表, 支持分类/状态/精选/关键词过滤
func (s *ProjectHandler) GetProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "12"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 12
	}

	query := &repository.ProjectQuery{
		Status:  c.Query("status"),
		Keyword: c.Query("q"),
		Limit:   pageSize,
		Offset:  (page - 1) * pageSize,
	}
	if categoryID, err := strconv.ParseUint(c.Query("category_id"), 10, 64); err == nil {
		query.CategoryID = categoryID
	}
	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured := featuredStr == "true" || featuredStr == "1"
		query.Featured = &featured
	}

	list, err := s.projectSvc.GetProjects(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetProject 项目详情, 访问即计浏览数
func (s *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	detail, err := s.projectSvc.GetProject(c.Request.Context(), userID, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// GetFeaturedProjects 精选项目
func (s *ProjectHandler) GetFeaturedProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if limit < 1 || limit > 20 {
		limit = 6
	}

	list, err := s.projectSvc.GetFeaturedProjects(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// CreateProject 新建项目
func (s *ProjectHandler) CreateProject(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.ProjectCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.projectSvc.CreateProject(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// UpdateProject 更新项目
func (s *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ProjectCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.projectSvc.UpdateProject(c.Request.Context(), projectID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteProject 删除项目及其关联数据
func (s *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.projectSvc.DeleteProject(c.Request.Context(), projectID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetCategories 分类列表
func (s *ProjectHandler) GetCategories(c *gin.Context) {
	list, err := s.projectSvc.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// CreateCategory 新建分类
func (s *ProjectHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.projectSvc.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// DeleteCategory 删除分类
func (s *ProjectHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil || categoryID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.projectSvc.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetTags 标签列表
func (s *ProjectHandler) GetTags(c *gin.Context) {
	list, err := s.projectSvc.GetTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
