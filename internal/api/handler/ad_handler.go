package handler

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/pkg/consts"
	"Atelier/internal/pkg/response"
	"Atelier/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	adSvc service.AdService
}

func NewAdHandler(adSvc service.AdService) *AdHandler {
	return &AdHandler{
		adSvc: adSvc,
	}
}

// ServeAd 按广告位返回投放单元, 设备类型由中间件注入
func (s *AdHandler) ServeAd(c *gin.Context) {
	position := c.Param("position")
	if position == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	path := c.DefaultQuery("path", "/")
	device := c.GetString(consts.DeviceKey)

	serve, err := s.adSvc.ServeAd(c.Request.Context(), position, device, path)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, serve)
}

// TrackImpression 上报展示
func (s *AdHandler) TrackImpression(c *gin.Context) {
	adUnitID, err := strconv.ParseUint(c.Param("unit_id"), 10, 64)
	if err != nil || adUnitID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.adSvc.TrackImpression(c.Request.Context(), adUnitID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// TrackClick 上报点击
func (s *AdHandler) TrackClick(c *gin.Context) {
	adUnitID, err := strconv.ParseUint(c.Param("unit_id"), 10, 64)
	if err != nil || adUnitID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.adSvc.TrackClick(c.Request.Context(), adUnitID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetConfig 广告全局配置
func (s *AdHandler) GetConfig(c *gin.Context) {
	config, err := s.adSvc.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, config)
}

// UpdateConfig 更新广告全局配置
func (s *AdHandler) UpdateConfig(c *gin.Context) {
	var req dto.AdConfigUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.adSvc.UpdateConfig(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetAdUnits 广告单元列表
func (s *AdHandler) GetAdUnits(c *gin.Context) {
	list, err := s.adSvc.GetAdUnits(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// CreateAdUnit 新建广告单元
func (s *AdHandler) CreateAdUnit(c *gin.Context) {
	var req dto.AdUnitCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.adSvc.CreateAdUnit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// UpdateAdUnit 更新广告单元
func (s *AdHandler) UpdateAdUnit(c *gin.Context) {
	adUnitID, err := strconv.ParseUint(c.Param("unit_id"), 10, 64)
	if err != nil || adUnitID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.AdUnitCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.adSvc.UpdateAdUnit(c.Request.Context(), adUnitID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteAdUnit 删除广告单元及其投放数据
func (s *AdHandler) DeleteAdUnit(c *gin.Context) {
	adUnitID, err := strconv.ParseUint(c.Param("unit_id"), 10, 64)
	if err != nil || adUnitID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.adSvc.DeleteAdUnit(c.Request.Context(), adUnitID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetPerformance 广告单元近 N 天投放数据
func (s *AdHandler) GetPerformance(c *gin.Context) {
	adUnitID, err := strconv.ParseUint(c.Param("unit_id"), 10, 64)
	if err != nil || adUnitID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	list, err := s.adSvc.GetPerformance(c.Request.Context(), adUnitID, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
