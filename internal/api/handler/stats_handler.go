package handler

import (
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

// GetStats 全站统计, 每次读取都重算
func (s *StatsHandler) GetStats(c *gin.Context) {
	stats, err := s.statsSvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
