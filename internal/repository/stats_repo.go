package repository

import (
	"Atelier/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepo interface {
	SaveStats(ctx context.Context, stats *model.PortfolioStats) error
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db}
}

// SaveStats 单行快照, 存在即更新
func (s *StatsRepoImpl) SaveStats(ctx context.Context, stats *model.PortfolioStats) error {
	stats.ID = 1
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_projects",
			"total_blog_posts",
			"total_views",
			"total_likes",
		}),
	}).Create(stats).Error
}
