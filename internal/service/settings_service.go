package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"landingcms/internal/cache"
	"landingcms/internal/model"
	"landingcms/internal/repository"
)

const (
	heroBannerCacheKey = "settings:hero_banner"
	heroBannerCacheTTL = 5 * time.Minute
)

// HeroBanner is the flat public projection of the hero_banner_* setting keys.
type HeroBanner struct {
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// defaultSettings seed an empty settings table at first startup.
var defaultSettings = []model.Setting{
	{
		Key:         "hero_banner_image",
		Value:       "https://images.unsplash.com/photo-1573671935871-77305106a2f2?q=80&w=3528&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Description: "URL ảnh banner hero section",
	},
	{
		Key:         "hero_banner_title",
		Value:       "DỊCH VỤ THIẾT KẾ WEB LANDING PAGE CHUYÊN NGHIỆP",
		Description: "Tiêu đề banner hero section",
	},
	{
		Key:         "hero_banner_subtitle",
		Value:       "Chuyên thiết kế Web Landing Page giới thiệu sản phẩm dịch vụ giúp bán hàng online hiệu quả và tiết kiệm chi phí nhất.",
		Description: "Mô tả banner hero section",
	},
}

// SettingsService exposes the key/value store and the hero banner projection.
type SettingsService interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	GetAll(ctx context.Context) ([]model.Setting, error)
	UpdateValue(ctx context.Context, key, value string, updatedBy uint) error
	HeroBanner(ctx context.Context) (*HeroBanner, error)
	UpdateHeroBanner(ctx context.Context, banner HeroBanner, updatedBy uint) error
	EnsureDefaults(ctx context.Context) error
}

type settingsService struct {
	settings repository.SettingRepository
	cache    *cache.Client
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settings repository.SettingRepository, cache *cache.Client) SettingsService {
	return &settingsService{settings: settings, cache: cache}
}

func (s *settingsService) Get(ctx context.Context, key string) (*model.Setting, error) {
	return s.settings.Get(ctx, key)
}

func (s *settingsService) GetAll(ctx context.Context) ([]model.Setting, error) {
	return s.settings.GetAll(ctx)
}

func (s *settingsService) UpdateValue(ctx context.Context, key, value string, updatedBy uint) error {
	if err := s.settings.UpdateValue(ctx, key, value, updatedBy); err != nil {
		return err
	}
	if strings.HasPrefix(key, model.HeroBannerPrefix) {
		_ = s.cache.Delete(ctx, heroBannerCacheKey)
	}
	return nil
}

// HeroBanner assembles the public banner object from the hero_banner_* keys,
// served from the redis cache when warm.
func (s *settingsService) HeroBanner(ctx context.Context) (*HeroBanner, error) {
	if data, _ := s.cache.Get(ctx, heroBannerCacheKey); data != nil {
		var cached HeroBanner
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	rows, err := s.settings.GetByPrefix(ctx, model.HeroBannerPrefix)
	if err != nil {
		return nil, fmt.Errorf("load hero banner settings: %w", err)
	}

	var banner HeroBanner
	for _, row := range rows {
		switch strings.TrimPrefix(row.Key, model.HeroBannerPrefix) {
		case "image":
			banner.Image = row.Value
		case "title":
			banner.Title = row.Value
		case "subtitle":
			banner.Subtitle = row.Value
		}
	}

	if payload, err := json.Marshal(banner); err == nil {
		_ = s.cache.Set(ctx, heroBannerCacheKey, payload, heroBannerCacheTTL)
	}
	return &banner, nil
}

// UpdateHeroBanner writes the three banner keys in one transaction, so a
// partial failure can never leave the banner half updated.
func (s *settingsService) UpdateHeroBanner(ctx context.Context, banner HeroBanner, updatedBy uint) error {
	err := s.settings.WithTransaction(ctx, func(repo repository.SettingRepository) error {
		if err := repo.UpdateValue(ctx, "hero_banner_image", banner.Image, updatedBy); err != nil {
			return err
		}
		if err := repo.UpdateValue(ctx, "hero_banner_title", banner.Title, updatedBy); err != nil {
			return err
		}
		return repo.UpdateValue(ctx, "hero_banner_subtitle", banner.Subtitle, updatedBy)
	})
	if err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, heroBannerCacheKey)
	return nil
}

// EnsureDefaults seeds the banner keys once, guarded by a row-count check so
// restarts never duplicate or overwrite operator edits.
func (s *settingsService) EnsureDefaults(ctx context.Context) error {
	count, err := s.settings.Count(ctx)
	if err != nil {
		return fmt.Errorf("count settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, setting := range defaultSettings {
		row := setting
		if err := s.settings.Create(ctx, &row); err != nil {
			return fmt.Errorf("seed setting %s: %w", row.Key, err)
		}
	}
	return nil
}
