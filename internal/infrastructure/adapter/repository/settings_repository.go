package repository

import (
	"context"
	"sort"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository implements SettingsRepository interface using GORM
type SettingsRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	timeProvider    coreport.TimeProvider
	errorClassifier *ErrorClassifier
}

// NewSettingsRepository creates a new SettingsRepository instance
func NewSettingsRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:              db,
		logger:          logger,
		timeProvider:    timeProvider,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetAll returns every stored setting
func (r *SettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []model.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		r.logger.Error("Failed to read settings", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.Wrap(err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

// EnsureDefaults inserts keys that are not stored yet and leaves existing values alone
func (r *SettingsRepository) EnsureDefaults(ctx context.Context, defaults map[string]string) error {
	if len(defaults) == 0 {
		return nil
	}

	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := r.timeProvider.Now()
	rows := make([]model.Setting, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, model.Setting{Key: key, Value: defaults[key], UpdatedAt: now})
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		r.logger.Error("Failed to seed settings", map[string]any{
			"error": result.Error.Error(),
		})
		return r.errorClassifier.Wrap(result.Error)
	}

	r.logger.Info("Settings defaults ensured", map[string]any{
		"keys":     len(keys),
		"inserted": result.RowsAffected,
	})
	return nil
}

// Set stores one value, replacing any existing one
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	row := model.Setting{Key: key, Value: value, UpdatedAt: r.timeProvider.Now()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return r.errorClassifier.Wrap(err)
	}
	return nil
}
