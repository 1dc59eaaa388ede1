package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "landingcms/internal/errors"
	"landingcms/internal/model"
	"landingcms/internal/repository"
)

// MockSettingRepository is a mock implementation of repository.SettingRepository.
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Setting), args.Error(1)
}

func (m *MockSettingRepository) GetAll(ctx context.Context) ([]model.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Setting), args.Error(1)
}

func (m *MockSettingRepository) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Setting), args.Error(1)
}

func (m *MockSettingRepository) Create(ctx context.Context, setting *model.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepository) UpdateValue(ctx context.Context, key, value string, updatedBy uint) error {
	args := m.Called(ctx, key, value, updatedBy)
	return args.Error(0)
}

func (m *MockSettingRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockSettingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettingRepository) WithTransaction(ctx context.Context, fn func(repo repository.SettingRepository) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

func TestSettingsService_HeroBanner(t *testing.T) {
	repo := new(MockSettingRepository)
	repo.On("GetByPrefix", mock.Anything, model.HeroBannerPrefix).Return([]model.Setting{
		{Key: "hero_banner_image", Value: "https://example.com/banner.jpg"},
		{Key: "hero_banner_subtitle", Value: "sub"},
		{Key: "hero_banner_title", Value: "title"},
	}, nil)

	banner, err := NewSettingsService(repo, nil).HeroBanner(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/banner.jpg", banner.Image)
	assert.Equal(t, "title", banner.Title)
	assert.Equal(t, "sub", banner.Subtitle)
}

func TestSettingsService_UpdateHeroBanner(t *testing.T) {
	t.Run("all three keys written", func(t *testing.T) {
		repo := new(MockSettingRepository)
		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpdateValue", mock.Anything, "hero_banner_image", "img", uint(4)).Return(nil)
		repo.On("UpdateValue", mock.Anything, "hero_banner_title", "t", uint(4)).Return(nil)
		repo.On("UpdateValue", mock.Anything, "hero_banner_subtitle", "s", uint(4)).Return(nil)

		banner := HeroBanner{Image: "img", Title: "t", Subtitle: "s"}
		err := NewSettingsService(repo, nil).UpdateHeroBanner(context.Background(), banner, 4)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing key aborts the transaction", func(t *testing.T) {
		repo := new(MockSettingRepository)
		repo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpdateValue", mock.Anything, "hero_banner_image", "img", uint(4)).Return(errs.ErrNotFound)

		banner := HeroBanner{Image: "img", Title: "t", Subtitle: "s"}
		err := NewSettingsService(repo, nil).UpdateHeroBanner(context.Background(), banner, 4)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		repo.AssertNotCalled(t, "UpdateValue", mock.Anything, "hero_banner_title", mock.Anything, mock.Anything)
	})
}

func TestSettingsService_UpdateValue_MissingKey(t *testing.T) {
	repo := new(MockSettingRepository)
	repo.On("UpdateValue", mock.Anything, "nope", "v", uint(1)).Return(errs.ErrNotFound)

	err := NewSettingsService(repo, nil).UpdateValue(context.Background(), "nope", "v", 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSettingsService_EnsureDefaults(t *testing.T) {
	t.Run("seeds banner keys on empty table", func(t *testing.T) {
		repo := new(MockSettingRepository)
		repo.On("Count", mock.Anything).Return(int64(0), nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Setting")).Return(nil).Times(3)

		err := NewSettingsService(repo, nil).EnsureDefaults(context.Background())
		assert.NoError(t, err)
		repo.AssertExpectations(t)

		seeded := make([]string, 0, 3)
		for _, call := range repo.Calls {
			if call.Method == "Create" {
				seeded = append(seeded, call.Arguments.Get(1).(*model.Setting).Key)
			}
		}
		assert.ElementsMatch(t, []string{"hero_banner_image", "hero_banner_title", "hero_banner_subtitle"}, seeded)
	})

	t.Run("no-op when any settings exist", func(t *testing.T) {
		repo := new(MockSettingRepository)
		repo.On("Count", mock.Anything).Return(int64(3), nil)

		err := NewSettingsService(repo, nil).EnsureDefaults(context.Background())
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
