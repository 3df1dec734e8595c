package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint64) error
	GetCategoryByID(ctx context.Context, id uint64) (*model.Category, error)
	GetAllCategories(ctx context.Context) ([]*model.Category, error)
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

func (s *CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *CategoryRepoImpl) DeleteCategory(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (s *CategoryRepoImpl) GetCategoryByID(ctx context.Context, id uint64) (*model.Category, error) {
	category := &model.Category{}
	result := s.db.WithContext(ctx).First(category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return category, nil
}

func (s *CategoryRepoImpl) GetAllCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	result := s.db.WithContext(ctx).Order("name ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}
