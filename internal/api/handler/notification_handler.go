package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: notificationSvc,
	}
}

// GetNotifications 当前用户的通知列表
func (s *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	list, err := s.notificationSvc.GetNotifications(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetUnreadCount 未读数
func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")

	count, err := s.notificationSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.UnreadCountDTO{Count: count})
}

// MarkAsRead 标记单条已读, 只能操作自己的通知
func (s *NotificationHandler) MarkAsRead(c *gin.Context) {
	notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 64)
	if err != nil || notificationID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.notificationSvc.MarkAsRead(c.Request.Context(), userID, notificationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkAllAsRead 全部标记已读
func (s *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetUint64("user_id")

	if err := s.notificationSvc.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
