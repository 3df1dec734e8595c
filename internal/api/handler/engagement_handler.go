package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/consts"
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

// CreateComment 发表评论或回复
func (s *EngagementHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.engagementSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// UpdateComment 编辑评论
func (s *EngagementHandler) UpdateComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.engagementSvc.UpdateComment(c.Request.Context(), userID, commentID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteComment 删除评论, 作者或管理员可操作
func (s *EngagementHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	isStaff := false
	for _, role := range c.GetStringSlice("roles") {
		if role == consts.RoleAdmin {
			isStaff = true
			break
		}
	}

	if err := s.engagementSvc.DeleteComment(c.Request.Context(), userID, isStaff, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetComments 项目评论列表, 一级评论带部分回复
func (s *EngagementHandler) GetComments(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	list, err := s.engagementSvc.GetCommentsByProjectID(c.Request.Context(), projectID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetReplies 某条一级评论下的回复列表
func (s *EngagementHandler) GetReplies(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	list, err := s.engagementSvc.GetReplies(c.Request.Context(), commentID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// UploadCommentImage 上传评论图片, 返回对象名
func (s *EngagementHandler) UploadCommentImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer file.Close()

	objectName, err := s.engagementSvc.UploadCommentImage(c.Request.Context(), file, fileHeader.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"image_url": objectName})
}

// ToggleProjectLike 项目点赞开关
func (s *EngagementHandler) ToggleProjectLike(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	state, err := s.engagementSvc.ToggleProjectLike(c.Request.Context(), userID, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// ToggleCommentLike 评论点赞开关
func (s *EngagementHandler) ToggleCommentLike(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	state, err := s.engagementSvc.ToggleCommentLike(c.Request.Context(), userID, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}
