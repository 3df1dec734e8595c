package service

import (
	"Atelier/internal/model"
	"Atelier/internal/pkg/consts"
	"context"
	"testing"
	"time"
)

func TestServeAdInactiveConfig(t *testing.T) {
	adRepo := newFakeAdRepo(
		&model.AdSenseConfig{ID: 1, PublisherID: "ca-pub-1", IsActive: false},
		&model.AdUnit{ID: 1, Position: consts.AdPositionSidebar, IsActive: true, ShowOnMobile: true, ShowOnDesktop: true},
	)
	svc := NewAdService(adRepo)

	res, err := svc.ServeAd(context.Background(), consts.AdPositionSidebar, consts.DeviceDesktop, "/projects/1/")
	if err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	if res != nil {
		t.Fatal("inactive config should serve nothing")
	}
}

func TestServeAdPicksFirstEligible(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	adRepo := newFakeAdRepo(
		&model.AdSenseConfig{ID: 1, PublisherID: "ca-pub-1", IsActive: true, TestMode: true},
		&model.AdUnit{ID: 1, AdUnitID: "slot-mobile", Position: consts.AdPositionSidebar, IsActive: true, ShowOnMobile: true, CreatedAt: base},
		&model.AdUnit{ID: 2, AdUnitID: "slot-any", Position: consts.AdPositionSidebar, IsActive: true, ShowOnMobile: true, ShowOnDesktop: true, CreatedAt: base.Add(time.Hour)},
	)
	svc := NewAdService(adRepo)

	res, err := svc.ServeAd(context.Background(), consts.AdPositionSidebar, consts.DeviceDesktop, "/projects/1/")
	if err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	if res == nil || res.Unit.AdUnitID != "slot-any" {
		t.Fatalf("expected slot-any for desktop, got %+v", res)
	}
	if res.PublisherID != "ca-pub-1" || !res.TestMode {
		t.Fatalf("config should pass through, got %+v", res)
	}

	res, err = svc.ServeAd(context.Background(), consts.AdPositionSidebar, consts.DeviceMobile, "/projects/1/")
	if err != nil {
		t.Fatalf("serve failed: %v", err)
	}
	if res == nil || res.Unit.AdUnitID != "slot-mobile" {
		t.Fatalf("expected slot-mobile for mobile, got %+v", res)
	}
}

func TestServeAdPageRules(t *testing.T) {
	adRepo := newFakeAdRepo(
		&model.AdSenseConfig{ID: 1, PublisherID: "ca-pub-1", IsActive: true},
		&model.AdUnit{
			ID:             1,
			AdUnitID:       "slot-blog",
			Position:       consts.AdPositionContentTop,
			IsActive:       true,
			ShowOnMobile:   true,
			ShowOnDesktop:  true,
			PagesToShow:    "/blog/",
			PagesToExclude: "/blog/private",
		},
	)
	svc := NewAdService(adRepo)

	res, err := svc.ServeAd(context.Background(), consts.AdPositionContentTop, consts.DeviceDesktop, "/blog/hello-world")
	if err != nil || res == nil {
		t.Fatalf("matching page should serve, got res=%v err=%v", res, err)
	}

	res, err = svc.ServeAd(context.Background(), consts.AdPositionContentTop, consts.DeviceDesktop, "/projects/1/")
	if err != nil || res != nil {
		t.Fatalf("non matching page should not serve, got res=%v err=%v", res, err)
	}

	// 排除优先于包含
	res, err = svc.ServeAd(context.Background(), consts.AdPositionContentTop, consts.DeviceDesktop, "/blog/private/draft")
	if err != nil || res != nil {
		t.Fatalf("excluded page should not serve, got res=%v err=%v", res, err)
	}
}

func TestFlushMetricsRedisUnavailable(t *testing.T) {
	adRepo := newFakeAdRepo(
		&model.AdSenseConfig{ID: 1, PublisherID: "ca-pub-1", IsActive: true},
		&model.AdUnit{ID: 1, AdUnitID: "slot-any", Position: consts.AdPositionSidebar, IsActive: true, ShowOnMobile: true, ShowOnDesktop: true},
	)
	svc := NewAdService(adRepo)

	// Redis 不可用时落库应安静跳过, 不能用 0 覆盖当日数据
	if err := svc.FlushMetrics(context.Background()); err != nil {
		t.Fatalf("flush with redis down should be a no-op, got %v", err)
	}
	if len(adRepo.saved) != 0 {
		t.Fatalf("expected no performance rows written, got %d", len(adRepo.saved))
	}
}
