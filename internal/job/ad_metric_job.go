package job

import (
	"Atelier/internal/pkg/logger"
	"Atelier/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// AdMetricJob 每日将 Redis 中累积的广告展示/点击计数落库
type AdMetricJob struct {
	adSvc service.AdService
}

func NewAdMetricJob(adSvc service.AdService) *AdMetricJob {
	return &AdMetricJob{adSvc: adSvc}
}

func (s *AdMetricJob) Run() {
	traceID := "job-ad-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.adSvc.FlushMetrics(ctx); err != nil {
		log.ErrorContext(ctx, "广告指标落库任务执行失败", "err", err)
		return
	}
	log.InfoContext(ctx, "广告指标落库任务执行完成")
}
