package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ResumeRepo interface {
	CreateResume(ctx context.Context, resume *model.Resume) error
	UpdateResume(ctx context.Context, resume *model.Resume) error
	DeleteResume(ctx context.Context, id uint64) error
	GetResumeByID(ctx context.Context, id uint64) (*model.Resume, error)
	GetActiveResume(ctx context.Context, language string) (*model.Resume, error)
	GetAllResumes(ctx context.Context) ([]*model.Resume, error)
	IncrementDownloadCount(ctx context.Context, id uint64) error
}

type ResumeRepoImpl struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) ResumeRepo {
	return &ResumeRepoImpl{db}
}

func (s *ResumeRepoImpl) CreateResume(ctx context.Context, resume *model.Resume) error {
	return s.db.WithContext(ctx).Create(resume).Error
}

func (s *ResumeRepoImpl) UpdateResume(ctx context.Context, resume *model.Resume) error {
	fields := []string{"title", "file_key", "language", "is_active"}
	return s.db.WithContext(ctx).Model(&model.Resume{}).
		Where("id = ?", resume.ID).
		Select(fields).
		Updates(resume).Error
}

func (s *ResumeRepoImpl) DeleteResume(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Resume{}, id).Error
}

func (s *ResumeRepoImpl) GetResumeByID(ctx context.Context, id uint64) (*model.Resume, error) {
	resume := &model.Resume{}
	result := s.db.WithContext(ctx).First(resume, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return resume, nil
}

// GetActiveResume 按语言取最新的启用简历
func (s *ResumeRepoImpl) GetActiveResume(ctx context.Context, language string) (*model.Resume, error) {
	resume := &model.Resume{}
	result := s.db.WithContext(ctx).
		Where("is_active = ? AND language = ?", true, language).
		Order("created_at DESC").
		First(resume)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return resume, nil
}

func (s *ResumeRepoImpl) GetAllResumes(ctx context.Context) ([]*model.Resume, error) {
	resumes := make([]*model.Resume, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&resumes)
	if result.Error != nil {
		return nil, result.Error
	}
	return resumes, nil
}

func (s *ResumeRepoImpl) IncrementDownloadCount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Resume{}).
		Where("id = ?", id).
		Update("download_count", gorm.Expr("download_count + 1")).Error
}
