package repository

import (
	"Atelier/internal/model"
	"context"

	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotifications(ctx context.Context, notifications []*model.Notification) error
	GetNotificationsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Notification, int64, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID uint64) (int64, error)
	MarkAllAsRead(ctx context.Context, userID uint64) error
}

type NotificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &NotificationRepoImpl{db}
}

func (s *NotificationRepoImpl) CreateNotifications(ctx context.Context, notifications []*model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(notifications).Error
}

func (s *NotificationRepoImpl) GetNotificationsByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Notification, int64, error) {
	notifications := make([]*model.Notification, 0)

	db := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := db.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return notifications, total, nil
}

func (s *NotificationRepoImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead 限定 user_id 防止标记他人通知
func (s *NotificationRepoImpl) MarkAsRead(ctx context.Context, userID, notificationID uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (s *NotificationRepoImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
