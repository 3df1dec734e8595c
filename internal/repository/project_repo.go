package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProjectQuery struct {
	CategoryID uint64
	Status     string
	Featured   *bool
	Keyword    string
	Limit      int
	Offset     int
}

type ProjectRepo interface {
	CreateProject(ctx context.Context, project *model.Project, tagIDs []uint64) error
	UpdateProject(ctx context.Context, project *model.Project, tagIDs []uint64) error
	DeleteProject(ctx context.Context, id uint64) error
	GetProjectByID(ctx context.Context, id uint64) (*model.Project, error)
	GetProjectsByQuery(ctx context.Context, query *ProjectQuery) ([]*model.Project, int64, error)
	GetFeaturedProjects(ctx context.Context, limit int) ([]*model.Project, error)
	GetPopularProjects(ctx context.Context, limit int) ([]*model.Project, error)
	IncrementViews(ctx context.Context, id uint64) error
	CountProjects(ctx context.Context) (int64, error)
	SumProjectViews(ctx context.Context) (int64, error)
}

type ProjectRepoImpl struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &ProjectRepoImpl{db: db}
}

func (s *ProjectRepoImpl) CreateProject(ctx context.Context, project *model.Project, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit("Tags", "User", "Category").Create(project); result.Error != nil {
			return result.Error
		}

		for _, tagID := range tagIDs {
			pt := &model.ProjectTag{ProjectID: project.ID, TagID: tagID}
			if result := tx.Create(pt); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

func (s *ProjectRepoImpl) UpdateProject(ctx context.Context, project *model.Project, tagIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fields := []string{"title", "category_id", "description", "image_url",
			"project_url", "github_url", "demo_url", "technologies", "status", "featured"}
		result := tx.Model(&model.Project{}).
			Where("id = ?", project.ID).
			Select(fields).
			Updates(project)
		if result.Error != nil {
			return result.Error
		}

		if result := tx.Where("project_id = ?", project.ID).Delete(&model.ProjectTag{}); result.Error != nil {
			return result.Error
		}
		for _, tagID := range tagIDs {
			pt := &model.ProjectTag{ProjectID: project.ID, TagID: tagID}
			if result := tx.Create(pt); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

func (s *ProjectRepoImpl) DeleteProject(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("project_id = ?", id).Delete(&model.ProjectTag{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("project_id = ?", id).Delete(&model.ProjectLike{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("project_id = ?", id).Delete(&model.Comment{}); result.Error != nil {
			return result.Error
		}
		return tx.Delete(&model.Project{}, id).Error
	})
}

func (s *ProjectRepoImpl) GetProjectByID(ctx context.Context, id uint64) (*model.Project, error) {
	project := &model.Project{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Tags").
		First(project, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return project, nil
}

// GetProjectsByQuery 按分类/状态/精选/关键词过滤并分页
func (s *ProjectRepoImpl) GetProjectsByQuery(ctx context.Context, query *ProjectQuery) ([]*model.Project, int64, error) {
	projects := make([]*model.Project, 0)

	db := s.db.WithContext(ctx).Model(&model.Project{})
	if query.CategoryID != 0 {
		db = db.Where("category_id = ?", query.CategoryID)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.Featured != nil {
		db = db.Where("featured = ?", *query.Featured)
	}
	if query.Keyword != "" {
		like := "%" + query.Keyword + "%"
		db = db.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	result := db.
		Preload("Category").
		Preload("Tags").
		Order("created_at DESC").
		Limit(query.Limit).Offset(query.Offset).
		Find(&projects)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return projects, total, nil
}

func (s *ProjectRepoImpl) GetFeaturedProjects(ctx context.Context, limit int) ([]*model.Project, error) {
	projects := make([]*model.Project, 0)
	result := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (s *ProjectRepoImpl) GetPopularProjects(ctx context.Context, limit int) ([]*model.Project, error) {
	projects := make([]*model.Project, 0)
	result := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Order("views_count DESC").
		Limit(limit).
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (s *ProjectRepoImpl) IncrementViews(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Update("views_count", gorm.Expr("views_count + 1")).Error
}

func (s *ProjectRepoImpl) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Project{}).Count(&count).Error
	return count, err
}

func (s *ProjectRepoImpl) SumProjectViews(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Project{}).
		Select("COALESCE(SUM(views_count), 0)").
		Scan(&total).Error
	return total, err
}
