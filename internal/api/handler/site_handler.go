package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	siteSvc service.SiteService
}

func NewSiteHandler(siteSvc service.SiteService) *SiteHandler {
	return &SiteHandler{
		siteSvc: siteSvc,
	}
}

// GetAbout 关于页内容
func (s *SiteHandler) GetAbout(c *gin.Context) {
	about, err := s.siteSvc.GetAbout(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, about)
}

// UpdateAbout 更新关于页内容
func (s *SiteHandler) UpdateAbout(c *gin.Context) {
	var req dto.AboutUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.siteSvc.UpdateAbout(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// SubmitContact 公开提交联系留言
func (s *SiteHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.siteSvc.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// GetContactMessages 管理员查看留言
func (s *SiteHandler) GetContactMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	unreadOnly := c.Query("unread") == "true" || c.Query("unread") == "1"

	list, err := s.siteSvc.GetContactMessages(c.Request.Context(), unreadOnly, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// MarkContactRead 标记留言已读
func (s *SiteHandler) MarkContactRead(c *gin.Context) {
	messageID, err := strconv.ParseUint(c.Param("message_id"), 10, 64)
	if err != nil || messageID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.siteSvc.MarkContactRead(c.Request.Context(), messageID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
