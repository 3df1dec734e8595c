package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/pkg/consts"
	"Atelier/internal/pkg/redis"
	"Atelier/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"
)

type AdService interface {
	GetConfig(ctx context.Context) (*dto.AdConfigDTO, error)
	UpdateConfig(ctx context.Context, req *dto.AdConfigUpdateDTO) error

	CreateAdUnit(ctx context.Context, req *dto.AdUnitCreateDTO) (uint64, error)
	UpdateAdUnit(ctx context.Context, id uint64, req *dto.AdUnitCreateDTO) error
	DeleteAdUnit(ctx context.Context, id uint64) error
	GetAdUnits(ctx context.Context) ([]*dto.AdUnitDTO, error)

	ServeAd(ctx context.Context, position, device, path string) (*dto.AdServeDTO, error)
	TrackImpression(ctx context.Context, adUnitID uint64) error
	TrackClick(ctx context.Context, adUnitID uint64) error
	GetPerformance(ctx context.Context, adUnitID uint64, days int) ([]*dto.AdPerformanceDTO, error)

	FlushMetrics(ctx context.Context) error
}

type adServiceImpl struct {
	adRepo repository.AdRepo
}

func NewAdService(adRepo repository.AdRepo) AdService {
	return &adServiceImpl{adRepo: adRepo}
}

func (s *adServiceImpl) GetConfig(ctx context.Context) (*dto.AdConfigDTO, error) {
	config, err := s.adRepo.GetOrCreateConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdConfigDTO{
		PublisherID: config.PublisherID,
		IsActive:    config.IsActive,
		AutoAds:     config.AutoAds,
		TestMode:    config.TestMode,
	}, nil
}

func (s *adServiceImpl) UpdateConfig(ctx context.Context, req *dto.AdConfigUpdateDTO) error {
	config, err := s.adRepo.GetOrCreateConfig(ctx)
	if err != nil {
		return err
	}

	if req.PublisherID != nil {
		config.PublisherID = *req.PublisherID
	}
	if req.IsActive != nil {
		config.IsActive = *req.IsActive
	}
	if req.AutoAds != nil {
		config.AutoAds = *req.AutoAds
	}
	if req.TestMode != nil {
		config.TestMode = *req.TestMode
	}
	return s.adRepo.UpdateConfig(ctx, config)
}

func (s *adServiceImpl) CreateAdUnit(ctx context.Context, req *dto.AdUnitCreateDTO) (uint64, error) {
	unit := buildAdUnit(req)
	if err := s.adRepo.CreateAdUnit(ctx, unit); err != nil {
		return 0, err
	}
	return unit.ID, nil
}

func (s *adServiceImpl) UpdateAdUnit(ctx context.Context, id uint64, req *dto.AdUnitCreateDTO) error {
	existing, err := s.adRepo.GetAdUnitByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAdUnitNotFound
	}

	unit := buildAdUnit(req)
	unit.ID = id
	return s.adRepo.UpdateAdUnit(ctx, unit)
}

func (s *adServiceImpl) DeleteAdUnit(ctx context.Context, id uint64) error {
	existing, err := s.adRepo.GetAdUnitByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAdUnitNotFound
	}
	return s.adRepo.DeleteAdUnit(ctx, id)
}

func (s *adServiceImpl) GetAdUnits(ctx context.Context) ([]*dto.AdUnitDTO, error) {
	units, err := s.adRepo.GetAllAdUnits(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.AdUnitDTO, 0, len(units))
	for _, unit := range units {
		list = append(list, convertToAdUnitDTO(unit))
	}
	return list, nil
}

// ServeAd 选取指定位置第一个满足设备与路径规则的广告单元, 没有则返回 nil
func (s *adServiceImpl) ServeAd(ctx context.Context, position, device, path string) (*dto.AdServeDTO, error) {
	config, err := s.adRepo.GetOrCreateConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !config.IsActive {
		return nil, nil
	}

	units, err := s.adRepo.GetActiveAdUnitsByPosition(ctx, position)
	if err != nil {
		return nil, err
	}

	for _, unit := range units {
		if !unit.MatchesDevice(device) {
			continue
		}
		if !unit.MatchesPage(path) {
			continue
		}
		return &dto.AdServeDTO{
			PublisherID: config.PublisherID,
			TestMode:    config.TestMode,
			Unit:        convertToAdUnitDTO(unit),
		}, nil
	}
	return nil, nil
}

// TrackImpression 展示计数先入 Redis, 由定时任务批量落库
func (s *adServiceImpl) TrackImpression(ctx context.Context, adUnitID uint64) error {
	return s.track(ctx, consts.AdImpressionKey, adUnitID)
}

func (s *adServiceImpl) TrackClick(ctx context.Context, adUnitID uint64) error {
	return s.track(ctx, consts.AdClickKey, adUnitID)
}

func (s *adServiceImpl) track(ctx context.Context, keyPrefix string, adUnitID uint64) error {
	unit, err := s.adRepo.GetAdUnitByID(ctx, adUnitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return ErrAdUnitNotFound
	}

	date := time.Now().Format("2006-01-02")
	member := fmt.Sprintf("%d:%s", adUnitID, date)
	if err := redis.Incr(ctx, keyPrefix+member); err != nil {
		return err
	}
	return redis.SAdd(ctx, consts.AdDirtyKey, member)
}

func (s *adServiceImpl) GetPerformance(ctx context.Context, adUnitID uint64, days int) ([]*dto.AdPerformanceDTO, error) {
	unit, err := s.adRepo.GetAdUnitByID(ctx, adUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrAdUnitNotFound
	}

	since := time.Now().AddDate(0, 0, -days)
	perfs, err := s.adRepo.GetPerformanceByUnit(ctx, adUnitID, since)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.AdPerformanceDTO, 0, len(perfs))
	for _, perf := range perfs {
		list = append(list, &dto.AdPerformanceDTO{
			AdUnitID:    perf.AdUnitID,
			Date:        perf.Date.Format("2006-01-02"),
			Impressions: perf.Impressions,
			Clicks:      perf.Clicks,
			CTR:         perf.CTR,
			Revenue:     perf.Revenue,
		})
	}
	return list, nil
}

// FlushMetrics 将 Redis 中累积的展示/点击数落库, 同日数据覆盖更新并重算 CTR。
// 先重命名脏集合, 避免落库期间新的计数丢失。
func (s *adServiceImpl) FlushMetrics(ctx context.Context) error {
	flushKey := consts.AdDirtyKey + ":flush"
	if err := redis.Rename(ctx, consts.AdDirtyKey, flushKey); err != nil {
		// 脏集合不存在说明没有待落库数据
		return nil
	}

	members, err := redis.GetSet(ctx, flushKey)
	if err != nil {
		return err
	}

	for _, member := range members {
		parts := strings.SplitN(member, ":", 2)
		if len(parts) != 2 {
			continue
		}
		adUnitID, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			continue
		}
		date, err := time.Parse("2006-01-02", parts[1])
		if err != nil {
			continue
		}

		impressions, impErr := redis.GetCounter(ctx, consts.AdImpressionKey+member)
		clicks, clickErr := redis.GetCounter(ctx, consts.AdClickKey+member)
		if impErr != nil || clickErr != nil {
			// 读取失败时放回脏集合, 下次落库重试, 避免用 0 覆盖当日数据
			log.Error("广告计数读取失败", "member", member, "impErr", impErr, "clickErr", clickErr)
			_ = redis.SAdd(ctx, consts.AdDirtyKey, member)
			continue
		}

		perf := &model.AdPerformance{
			AdUnitID:    adUnitID,
			Date:        date,
			Impressions: impressions,
			Clicks:      clicks,
			CTR:         model.CalcCTR(impressions, clicks),
		}
		if err := s.adRepo.SaveOrUpdatePerformance(ctx, perf); err != nil {
			log.Error("广告指标落库失败", "member", member, "err", err)
			continue
		}

		_ = redis.DeleteKey(ctx, consts.AdImpressionKey+member)
		_ = redis.DeleteKey(ctx, consts.AdClickKey+member)
	}

	_ = redis.DeleteKey(ctx, flushKey)
	return nil
}

func buildAdUnit(req *dto.AdUnitCreateDTO) *model.AdUnit {
	unit := &model.AdUnit{
		Name:           req.Name,
		AdUnitID:       req.AdUnitID,
		AdType:         req.AdType,
		AdSize:         req.AdSize,
		CustomWidth:    req.CustomWidth,
		CustomHeight:   req.CustomHeight,
		Position:       req.Position,
		IsActive:       true,
		ShowOnMobile:   true,
		ShowOnDesktop:  true,
		PagesToShow:    req.PagesToShow,
		PagesToExclude: req.PagesToExclude,
		CustomCSS:      req.CustomCSS,
	}
	if unit.AdType == "" {
		unit.AdType = "display"
	}
	if unit.AdSize == "" {
		unit.AdSize = "responsive"
	}
	if req.IsActive != nil {
		unit.IsActive = *req.IsActive
	}
	if req.ShowOnMobile != nil {
		unit.ShowOnMobile = *req.ShowOnMobile
	}
	if req.ShowOnDesktop != nil {
		unit.ShowOnDesktop = *req.ShowOnDesktop
	}
	return unit
}

func convertToAdUnitDTO(unit *model.AdUnit) *dto.AdUnitDTO {
	return &dto.AdUnitDTO{
		ID:             unit.ID,
		Name:           unit.Name,
		AdUnitID:       unit.AdUnitID,
		AdType:         unit.AdType,
		AdSize:         unit.AdSize,
		CustomWidth:    unit.CustomWidth,
		CustomHeight:   unit.CustomHeight,
		Position:       unit.Position,
		IsActive:       unit.IsActive,
		ShowOnMobile:   unit.ShowOnMobile,
		ShowOnDesktop:  unit.ShowOnDesktop,
		PagesToShow:    unit.PagesToShow,
		PagesToExclude: unit.PagesToExclude,
		CustomCSS:      unit.CustomCSS,
	}
}
