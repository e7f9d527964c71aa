package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LicenseRepository implements LicenseRepository interface using GORM
type LicenseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewLicenseRepository creates a new LicenseRepository instance
func NewLicenseRepository(db *gorm.DB, logger coreport.Logger) *LicenseRepository {
	return &LicenseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *LicenseRepository) modelToEntity(m *model.License) *entity.License {
	return &entity.License{
		ID:                    m.ID,
		UserID:                m.UserID,
		ProductID:             m.ProductID,
		Active:                m.Active,
		UpdateExpiresAt:       m.UpdateExpiresAt,
		DownloadsUsed:         m.DownloadsUsed,
		DownloadLimit:         m.DownloadLimit,
		LastVersionDownloaded: m.LastVersionDownloaded,
		LastUpdateCheck:       m.LastUpdateCheck,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// Create saves a new license and assigns its ID
func (r *LicenseRepository) Create(ctx context.Context, license *entity.License) error {
	licenseModel := model.License{
		UserID:                license.UserID,
		ProductID:             license.ProductID,
		Active:                license.Active,
		UpdateExpiresAt:       license.UpdateExpiresAt,
		DownloadsUsed:         license.DownloadsUsed,
		DownloadLimit:         license.DownloadLimit,
		LastVersionDownloaded: license.LastVersionDownloaded,
		LastUpdateCheck:       license.LastUpdateCheck,
		CreatedAt:             license.CreatedAt,
		UpdatedAt:             license.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&licenseModel).Error; err != nil {
		r.logger.Error("Failed to create license", map[string]any{
			"user_id":    license.UserID,
			"product_id": license.ProductID,
			"error":      err.Error(),
		})
		return r.errorClassifier.Wrap(err)
	}

	license.ID = licenseModel.ID
	return nil
}

// GetByID retrieves a license
func (r *LicenseRepository) GetByID(ctx context.Context, id uint64) (*entity.License, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindActive returns the user's active license for a product, the newest one if several exist
func (r *LicenseRepository) FindActive(ctx context.Context, userID, productID uint64) (*entity.License, error) {
	return r.findOne(ctx, "user_id = ? AND product_id = ? AND active = ?", userID, productID, true)
}

func (r *LicenseRepository) findOne(ctx context.Context, query string, args ...any) (*entity.License, error) {
	var licenseModel model.License
	err := r.db.WithContext(ctx).Where(query, args...).Order("id DESC").First(&licenseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrLicenseNotFound
		}
		r.logger.Error("Failed to get license", map[string]any{
			"query": query,
			"error": err.Error(),
		})
		return nil, r.errorClassifier.Wrap(err)
	}
	return r.modelToEntity(&licenseModel), nil
}

// TouchUpdateCheck records when updates were last checked
func (r *LicenseRepository) TouchUpdateCheck(ctx context.Context, id uint64, at time.Time) error {
	return r.update(ctx, "touch update check", r.db.WithContext(ctx).Model(&model.License{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_update_check": at, "updated_at": at}))
}

// ReserveDownload takes one download from the quota in a single conditional statement
func (r *LicenseRepository) ReserveDownload(ctx context.Context, id uint64, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.License{}).
		Where("id = ? AND downloads_used < download_limit", id).
		Updates(map[string]any{
			"downloads_used": gorm.Expr("downloads_used + 1"),
			"updated_at":     at,
		})
	if result.Error != nil {
		r.logger.Error("Failed to reserve download", map[string]any{
			"license_id": id,
			"error":      result.Error.Error(),
		})
		return false, r.errorClassifier.Wrap(result.Error)
	}
	return result.RowsAffected == 1, nil
}

// ReleaseDownload gives back a reservation made by ReserveDownload
func (r *LicenseRepository) ReleaseDownload(ctx context.Context, id uint64, at time.Time) error {
	return r.update(ctx, "release download", r.db.WithContext(ctx).Model(&model.License{}).
		Where("id = ? AND downloads_used > 0", id).
		Updates(map[string]any{
			"downloads_used": gorm.Expr("downloads_used - 1"),
			"updated_at":     at,
		}))
}

// SetLastVersionDownloaded records the version of the latest completed download
func (r *LicenseRepository) SetLastVersionDownloaded(ctx context.Context, id uint64, version string, at time.Time) error {
	return r.update(ctx, "set last version downloaded", r.db.WithContext(ctx).Model(&model.License{}).
		Where("id = ?", id).
		Updates(map[string]any{"last_version_downloaded": version, "updated_at": at}))
}

// ExtendUpdateWindow moves the update expiry to expiresAt
func (r *LicenseRepository) ExtendUpdateWindow(ctx context.Context, id uint64, expiresAt time.Time, at time.Time) error {
	return r.update(ctx, "extend update window", r.db.WithContext(ctx).Model(&model.License{}).
		Where("id = ?", id).
		Updates(map[string]any{"update_expires_at": expiresAt, "updated_at": at}))
}

func (r *LicenseRepository) update(ctx context.Context, operation string, result *gorm.DB) error {
	if result.Error != nil {
		r.logger.Error("Failed to update license", map[string]any{
			"operation": operation,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("License update matched no rows", map[string]any{
			"operation": operation,
		})
	}
	return nil
}
