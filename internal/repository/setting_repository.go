package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "landingcms/internal/errors"
	"landingcms/internal/model"
)

// SettingRepository defines key/value settings persistence operations.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	GetAll(ctx context.Context) ([]model.Setting, error)
	GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error)
	Create(ctx context.Context, setting *model.Setting) error
	UpdateValue(ctx context.Context, key, value string, updatedBy uint) error
	Delete(ctx context.Context, key string) error
	Count(ctx context.Context) (int64, error)
	WithTransaction(ctx context.Context, fn func(repo SettingRepository) error) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository builds a GORM-backed settings repository.
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.WithContext(ctx).Where("key_name = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) GetAll(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.WithContext(ctx).Order("key_name").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	var settings []model.Setting
	err := r.db.WithContext(ctx).
		Where("key_name LIKE ?", prefix+"%").
		Order("key_name").
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepository) Create(ctx context.Context, setting *model.Setting) error {
	if err := r.db.WithContext(ctx).Create(setting).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrDuplicate
		}
		return err
	}
	return nil
}

// UpdateValue changes an existing key's value and audit fields. A missing key
// is reported as not found rather than silently ignored. The key is resolved
// with its own lookup; RowsAffected is no signal here, since MySQL reports
// changed rows and a same-value write would change nothing.
func (r *settingRepository) UpdateValue(ctx context.Context, key, value string, updatedBy uint) error {
	var setting model.Setting
	err := r.db.WithContext(ctx).Select("id").Where("key_name = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrNotFound
		}
		return err
	}

	return r.db.WithContext(ctx).Model(&model.Setting{}).
		Where("id = ?", setting.ID).
		Updates(map[string]interface{}{
			"value":      value,
			"updated_by": updatedBy,
		}).Error
}

func (r *settingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key_name = ?", key).Delete(&model.Setting{}).Error
}

func (r *settingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Setting{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// WithTransaction runs fn against a repository bound to a single transaction.
// Used to keep the multi-key hero banner update atomic.
func (r *settingRepository) WithTransaction(ctx context.Context, fn func(repo SettingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&settingRepository{db: tx})
	})
}
