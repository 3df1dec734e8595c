package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TestimonialRepo interface {
	CreateTestimonial(ctx context.Context, testimonial *model.Testimonial) error
	UpdateTestimonial(ctx context.Context, testimonial *model.Testimonial) error
	DeleteTestimonial(ctx context.Context, id uint64) error
	GetTestimonialByID(ctx context.Context, id uint64) (*model.Testimonial, error)
	GetTestimonials(ctx context.Context, featuredOnly bool, limit, offset int) ([]*model.Testimonial, int64, error)
}

type TestimonialRepoImpl struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) TestimonialRepo {
	return &TestimonialRepoImpl{db}
}

func (s *TestimonialRepoImpl) CreateTestimonial(ctx context.Context, testimonial *model.Testimonial) error {
	return s.db.WithContext(ctx).Create(testimonial).Error
}

func (s *TestimonialRepoImpl) UpdateTestimonial(ctx context.Context, testimonial *model.Testimonial) error {
	fields := []string{"name", "position", "company", "message", "photo_url", "rating", "is_featured"}
	return s.db.WithContext(ctx).Model(&model.Testimonial{}).
		Where("id = ?", testimonial.ID).
		Select(fields).
		Updates(testimonial).Error
}

func (s *TestimonialRepoImpl) DeleteTestimonial(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Testimonial{}, id).Error
}

func (s *TestimonialRepoImpl) GetTestimonialByID(ctx context.Context, id uint64) (*model.Testimonial, error) {
	testimonial := &model.Testimonial{}
	result := s.db.WithContext(ctx).First(testimonial, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return testimonial, nil
}

func (s *TestimonialRepoImpl) GetTestimonials(ctx context.Context, featuredOnly bool, limit, offset int) ([]*model.Testimonial, int64, error) {
	testimonials := make([]*model.Testimonial, 0)

	db := s.db.WithContext(ctx).Model(&model.Testimonial{})
	if featuredOnly {
		db = db.Where("is_featured = ?", true)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := db.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&testimonials)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return testimonials, total, nil
}
