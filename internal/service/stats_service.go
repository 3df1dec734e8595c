package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/repository"
	"context"
	log "log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	GetStats(ctx context.Context) (*dto.PortfolioStatsDTO, error)
}

type statsServiceImpl struct {
	statsRepo      repository.StatsRepo
	projectRepo    repository.ProjectRepo
	blogRepo       repository.BlogRepo
	engagementRepo repository.EngagementRepo
}

func NewStatsService(
	statsRepo repository.StatsRepo,
	projectRepo repository.ProjectRepo,
	blogRepo repository.BlogRepo,
	engagementRepo repository.EngagementRepo,
) StatsService {
	return &statsServiceImpl{
		statsRepo:      statsRepo,
		projectRepo:    projectRepo,
		blogRepo:       blogRepo,
		engagementRepo: engagementRepo,
	}
}

// GetStats 每次读取都重新聚合并落库快照
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.PortfolioStatsDTO, error) {
	stats := &model.PortfolioStats{UpdatedAt: time.Now()}
	var projectViews, blogViews int64

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.TotalProjects, err = s.projectRepo.CountProjects(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalBlogPosts, err = s.blogRepo.CountPublishedPosts(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		projectViews, err = s.projectRepo.SumProjectViews(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		blogViews, err = s.blogRepo.SumBlogViews(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalLikes, err = s.engagementRepo.CountAllProjectLikes(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.TotalViews = projectViews + blogViews

	// 快照落库失败不阻塞读取
	if err := s.statsRepo.SaveStats(ctx, stats); err != nil {
		log.Warn("统计快照落库失败", "err", err)
	}

	result := &dto.PortfolioStatsDTO{
		TotalProjects:  stats.TotalProjects,
		TotalBlogPosts: stats.TotalBlogPosts,
		TotalViews:     stats.TotalViews,
		TotalLikes:     stats.TotalLikes,
	}

	popularProjects, err := s.projectRepo.GetPopularProjects(ctx, 5)
	if err == nil {
		for _, project := range popularProjects {
			result.PopularProjects = append(result.PopularProjects, convertToProjectDTO(project))
		}
	}

	recentProjects, _, err := s.projectRepo.GetProjectsByQuery(ctx, &repository.ProjectQuery{Limit: 5})
	if err == nil {
		for _, project := range recentProjects {
			result.RecentProjects = append(result.RecentProjects, convertToProjectDTO(project))
		}
	}

	popularPosts, err := s.blogRepo.GetPopularPosts(ctx, 5)
	if err == nil {
		for _, post := range popularPosts {
			result.PopularPosts = append(result.PopularPosts, convertToBlogPostDTO(post, false))
		}
	}

	return result, nil
}
