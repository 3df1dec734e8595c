package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SiteRepo interface {
	GetAbout(ctx context.Context) (*model.About, error)
	SaveAbout(ctx context.Context, about *model.About) error

	CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error
	GetContactMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]*model.ContactMessage, int64, error)
	MarkContactMessageRead(ctx context.Context, id uint64) (int64, error)
}

type SiteRepoImpl struct {
	db *gorm.DB
}

func NewSiteRepo(db *gorm.DB) SiteRepo {
	return &SiteRepoImpl{db}
}

func (s *SiteRepoImpl) GetAbout(ctx context.Context) (*model.About, error) {
	about := &model.About{}
	result := s.db.WithContext(ctx).Order("created_at DESC").First(about)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return about, nil
}

func (s *SiteRepoImpl) SaveAbout(ctx context.Context, about *model.About) error {
	if about.ID == 0 {
		return s.db.WithContext(ctx).Create(about).Error
	}
	return s.db.WithContext(ctx).Model(&model.About{}).
		Where("id = ?", about.ID).
		Select([]string{"description", "photo_url"}).
		Updates(about).Error
}

func (s *SiteRepoImpl) CreateContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

func (s *SiteRepoImpl) GetContactMessages(ctx context.Context, unreadOnly bool, limit, offset int) ([]*model.ContactMessage, int64, error) {
	messages := make([]*model.ContactMessage, 0)

	db := s.db.WithContext(ctx).Model(&model.ContactMessage{})
	if unreadOnly {
		db = db.Where("is_read = ?", false)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := db.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&messages)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return messages, total, nil
}

func (s *SiteRepoImpl) MarkContactMessageRead(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
