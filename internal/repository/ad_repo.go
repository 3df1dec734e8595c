package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdRepo interface {
	GetOrCreateConfig(ctx context.Context) (*model.AdSenseConfig, error)
	UpdateConfig(ctx context.Context, config *model.AdSenseConfig) error

	CreateAdUnit(ctx context.Context, unit *model.AdUnit) error
	UpdateAdUnit(ctx context.Context, unit *model.AdUnit) error
	DeleteAdUnit(ctx context.Context, id uint64) error
	GetAdUnitByID(ctx context.Context, id uint64) (*model.AdUnit, error)
	GetAllAdUnits(ctx context.Context) ([]*model.AdUnit, error)
	GetActiveAdUnitsByPosition(ctx context.Context, position string) ([]*model.AdUnit, error)

	SaveOrUpdatePerformance(ctx context.Context, perf *model.AdPerformance) error
	GetPerformanceByUnit(ctx context.Context, adUnitID uint64, since time.Time) ([]*model.AdPerformance, error)
}

type AdRepoImpl struct {
	db *gorm.DB
}

func NewAdRepo(db *gorm.DB) AdRepo {
	return &AdRepoImpl{db}
}

// GetOrCreateConfig 配置固定单行 id=1, 不存在时用默认值建立
func (s *AdRepoImpl) GetOrCreateConfig(ctx context.Context) (*model.AdSenseConfig, error) {
	config := &model.AdSenseConfig{}
	err := s.db.WithContext(ctx).First(config, 1).Error
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	config = &model.AdSenseConfig{ID: 1}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(config).Error; err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).First(config, 1).Error
	return config, err
}

func (s *AdRepoImpl) UpdateConfig(ctx context.Context, config *model.AdSenseConfig) error {
	fields := []string{"publisher_id", "is_active", "auto_ads", "test_mode"}
	return s.db.WithContext(ctx).Model(&model.AdSenseConfig{}).
		Where("id = ?", 1).
		Select(fields).
		Updates(config).Error
}

func (s *AdRepoImpl) CreateAdUnit(ctx context.Context, unit *model.AdUnit) error {
	return s.db.WithContext(ctx).Create(unit).Error
}

func (s *AdRepoImpl) UpdateAdUnit(ctx context.Context, unit *model.AdUnit) error {
	fields := []string{"name", "ad_unit_id", "ad_type", "ad_size", "custom_width", "custom_height",
		"position", "is_active", "show_on_mobile", "show_on_desktop",
		"pages_to_show", "pages_to_exclude", "custom_css"}
	return s.db.WithContext(ctx).Model(&model.AdUnit{}).
		Where("id = ?", unit.ID).
		Select(fields).
		Updates(unit).Error
}

func (s *AdRepoImpl) DeleteAdUnit(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("ad_unit_id = ?", id).Delete(&model.AdPerformance{}); result.Error != nil {
			return result.Error
		}
		return tx.Delete(&model.AdUnit{}, id).Error
	})
}

func (s *AdRepoImpl) GetAdUnitByID(ctx context.Context, id uint64) (*model.AdUnit, error) {
	unit := &model.AdUnit{}
	result := s.db.WithContext(ctx).First(unit, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return unit, nil
}

func (s *AdRepoImpl) GetAllAdUnits(ctx context.Context) ([]*model.AdUnit, error) {
	units := make([]*model.AdUnit, 0)
	result := s.db.WithContext(ctx).
		Order("position ASC, created_at ASC").
		Find(&units)
	if result.Error != nil {
		return nil, result.Error
	}
	return units, nil
}

// GetActiveAdUnitsByPosition 按创建顺序返回, 投放时取第一个满足条件的单元
func (s *AdRepoImpl) GetActiveAdUnitsByPosition(ctx context.Context, position string) ([]*model.AdUnit, error) {
	units := make([]*model.AdUnit, 0)
	result := s.db.WithContext(ctx).
		Where("position = ? AND is_active = ?", position, true).
		Order("created_at ASC").
		Find(&units)
	if result.Error != nil {
		return nil, result.Error
	}
	return units, nil
}

// SaveOrUpdatePerformance 采用 Upsert 逻辑。如果 ad_unit_id + date 已存在，则更新各项数值
func (s *AdRepoImpl) SaveOrUpdatePerformance(ctx context.Context, perf *model.AdPerformance) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ad_unit_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"impressions",
			"clicks",
			"ctr",
		}),
	}).Create(perf).Error
}

func (s *AdRepoImpl) GetPerformanceByUnit(ctx context.Context, adUnitID uint64, since time.Time) ([]*model.AdPerformance, error) {
	perfs := make([]*model.AdPerformance, 0)
	result := s.db.WithContext(ctx).
		Where("ad_unit_id = ? AND date >= ?", adUnitID, since).
		Order("date ASC").
		Find(&perfs)
	if result.Error != nil {
		return nil, result.Error
	}
	return perfs, nil
}
