package entitlement

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/storage"
	"github.com/google/uuid"
)

// baseVersion is the effective version when neither history nor a current marker exists
const baseVersion = "0"

// Engine computes update availability and gates downloads for licensed users
type Engine struct {
	licenseRepo  persistence.LicenseRepository
	productRepo  persistence.ProductRepository
	downloadRepo persistence.DownloadRecordRepository
	files        storage.FileStore
	timeProvider coreport.TimeProvider
	metrics      coreport.MetricsRecorder
	logger       coreport.Logger
	newRecordID  func() string
}

// NewEngine creates a new entitlement Engine
func NewEngine(
	licenseRepo persistence.LicenseRepository,
	productRepo persistence.ProductRepository,
	downloadRepo persistence.DownloadRecordRepository,
	files storage.FileStore,
	timeProvider coreport.TimeProvider,
	metrics coreport.MetricsRecorder,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		licenseRepo:  licenseRepo,
		productRepo:  productRepo,
		downloadRepo: downloadRepo,
		files:        files,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
		newRecordID:  uuid.NewString,
	}
}

// CheckUpdates lists the versions newer than the user's effective current version,
// each annotated with whether it may be downloaded and why not
func (e *Engine) CheckUpdates(ctx context.Context, userID, productID uint64) (*entity.UpdateStatus, error) {
	now := e.timeProvider.Now()

	versions, err := e.productRepo.ListVersions(ctx, productID)
	if err != nil {
		return nil, err
	}

	status := &entity.UpdateStatus{
		UserID:        userID,
		ProductID:     productID,
		LatestVersion: latestVersion(versions),
		Updates:       []entity.UpdateCandidate{},
		CheckedAt:     now,
	}

	license, err := e.licenseRepo.FindActive(ctx, userID, productID)
	if errors.Is(err, errs.ErrLicenseNotFound) {
		denial := entity.NoLicenseDenial()
		status.Denial = &denial
		status.CurrentVersion = markedCurrent(versions)
		return status, nil
	}
	if err != nil {
		return nil, err
	}

	if err := e.licenseRepo.TouchUpdateCheck(ctx, license.ID, now); err != nil {
		e.logger.Error("Failed to record update check", map[string]any{
			"license_id": license.ID,
			"error":      err.Error(),
		})
	}

	current, err := e.effectiveCurrentVersion(ctx, license, versions)
	if err != nil {
		return nil, err
	}

	status.HasLicense = true
	status.LicenseID = license.ID
	status.CurrentVersion = current
	status.DaysRemaining = license.DaysRemaining(now)
	status.DownloadsRemaining = license.DownloadsRemaining()

	for _, version := range newerVersions(versions, current) {
		denials := evaluateGates(license, version, current, now)
		status.Updates = append(status.Updates, entity.UpdateCandidate{
			VersionID:       version.ID,
			Version:         version.Version,
			ReleasedAt:      version.ReleasedAt,
			RequiresLicense: version.RequiresLicense,
			Changelog:       version.Changelog,
			FileSize:        version.FileSize,
			Eligible:        len(denials) == 0,
			Denials:         denials,
		})
	}

	e.logger.Debug("Update check completed", map[string]any{
		"user_id":         userID,
		"product_id":      productID,
		"current_version": current,
		"updates":         len(status.Updates),
	})

	return status, nil
}

// effectiveCurrentVersion is the version of the latest completed download,
// falling back to the product's current marker
func (e *Engine) effectiveCurrentVersion(ctx context.Context, license *entity.License, versions []*entity.ProductVersion) (string, error) {
	version, found, err := e.downloadRepo.LatestCompletedVersion(ctx, license.ID)
	if err != nil {
		return "", err
	}
	if found && version != "" {
		return version, nil
	}
	return markedCurrent(versions), nil
}

func markedCurrent(versions []*entity.ProductVersion) string {
	for _, v := range versions {
		if v.IsCurrent {
			return v.Version
		}
	}
	return baseVersion
}

func latestVersion(versions []*entity.ProductVersion) string {
	latest := ""
	for _, v := range versions {
		if latest == "" || entity.CompareVersions(v.Version, latest) > 0 {
			latest = v.Version
		}
	}
	return latest
}

// newerVersions returns versions sorting after current, most recently released first
func newerVersions(versions []*entity.ProductVersion, current string) []*entity.ProductVersion {
	var newer []*entity.ProductVersion
	for _, v := range versions {
		if v.NewerThan(current) {
			newer = append(newer, v)
		}
	}
	sort.SliceStable(newer, func(i, j int) bool {
		return newer[i].ReleasedAt.After(newer[j].ReleasedAt)
	})
	return newer
}

func (e *Engine) now() time.Time {
	return e.timeProvider.Now()
}
