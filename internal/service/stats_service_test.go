package service

import (
	"Atelier/internal/model"
	"context"
	"testing"
)

func TestGetStatsAggregates(t *testing.T) {
	projectRepo := newFakeProjectRepo(
		&model.Project{ID: 1, UserID: 1, Title: "a", ViewsCount: 7},
		&model.Project{ID: 2, UserID: 1, Title: "b", ViewsCount: 3},
	)
	blogRepo := newFakeBlogRepo(
		&model.BlogPost{ID: 1, Slug: "a", IsPublished: true, ViewsCount: 4},
		&model.BlogPost{ID: 2, Slug: "b", IsPublished: false, ViewsCount: 1},
	)
	engagementRepo := newFakeEngagementRepo()
	engagementRepo.projectLikes[[2]uint64{2, 1}] = true
	engagementRepo.projectLikes[[2]uint64{3, 1}] = true
	statsRepo := &fakeStatsRepo{}

	svc := NewStatsService(statsRepo, projectRepo, blogRepo, engagementRepo)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalProjects != 2 {
		t.Fatalf("expected 2 projects, got %d", stats.TotalProjects)
	}
	if stats.TotalBlogPosts != 1 {
		t.Fatalf("expected 1 published post, got %d", stats.TotalBlogPosts)
	}
	if stats.TotalViews != 15 {
		t.Fatalf("expected 15 total views, got %d", stats.TotalViews)
	}
	if stats.TotalLikes != 2 {
		t.Fatalf("expected 2 likes, got %d", stats.TotalLikes)
	}

	// 读取同时写入快照
	if statsRepo.saved == nil || statsRepo.saved.TotalViews != 15 {
		t.Fatalf("snapshot should be persisted, got %+v", statsRepo.saved)
	}
}
