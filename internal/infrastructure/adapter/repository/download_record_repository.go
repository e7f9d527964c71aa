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

// DownloadRecordRepository implements DownloadRecordRepository interface using GORM
type DownloadRecordRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDownloadRecordRepository creates a new DownloadRecordRepository instance
func NewDownloadRecordRepository(db *gorm.DB, logger coreport.Logger) *DownloadRecordRepository {
	return &DownloadRecordRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create saves a record in the started state
func (r *DownloadRecordRepository) Create(ctx context.Context, record *entity.UpdateDownloadRecord) error {
	recordModel := model.UpdateDownloadRecord{
		ID:              record.ID,
		LicenseID:       record.LicenseID,
		VersionID:       record.VersionID,
		Version:         record.Version,
		PreviousVersion: record.PreviousVersion,
		Status:          string(entity.DownloadStarted),
		StartedAt:       record.StartedAt,
	}

	if err := r.db.WithContext(ctx).Omit("License").Create(&recordModel).Error; err != nil {
		r.logger.Error("Failed to create download record", map[string]any{
			"record_id":  record.ID,
			"license_id": record.LicenseID,
			"error":      err.Error(),
		})
		return r.errorClassifier.Wrap(err)
	}

	record.Status = entity.DownloadStarted
	return nil
}

// Finish moves a started record to a terminal status; records that already finished are left alone
func (r *DownloadRecordRepository) Finish(
	ctx context.Context,
	id string,
	status entity.DownloadStatus,
	errorMessage string,
	at time.Time,
) error {
	result := r.db.WithContext(ctx).Model(&model.UpdateDownloadRecord{}).
		Where("id = ? AND status = ?", id, string(entity.DownloadStarted)).
		Updates(map[string]any{
			"status":        string(status),
			"error_message": errorMessage,
			"finished_at":   at,
		})

	if result.Error != nil {
		r.logger.Error("Failed to finish download record", map[string]any{
			"record_id": id,
			"status":    string(status),
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// GetByID retrieves a record
func (r *DownloadRecordRepository) GetByID(ctx context.Context, id string) (*entity.UpdateDownloadRecord, error) {
	var m model.UpdateDownloadRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, r.errorClassifier.Wrap(err)
	}

	return &entity.UpdateDownloadRecord{
		ID:              m.ID,
		LicenseID:       m.LicenseID,
		VersionID:       m.VersionID,
		Version:         m.Version,
		PreviousVersion: m.PreviousVersion,
		Status:          entity.DownloadStatus(m.Status),
		ErrorMessage:    m.ErrorMessage,
		StartedAt:       m.StartedAt,
		FinishedAt:      m.FinishedAt,
	}, nil
}

// LatestCompletedVersion returns the version of the license's most recent completed download
func (r *DownloadRecordRepository) LatestCompletedVersion(ctx context.Context, licenseID uint64) (string, bool, error) {
	var m model.UpdateDownloadRecord
	err := r.db.WithContext(ctx).
		Where("license_id = ? AND status = ?", licenseID, string(entity.DownloadCompleted)).
		Order("finished_at DESC").Order("started_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, r.errorClassifier.Wrap(err)
	}
	return m.Version, true, nil
}
