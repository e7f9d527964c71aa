package entitlement

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
)

// Download outcomes reported to metrics
const (
	outcomeDownloaded = "completed"
	outcomeDenied     = "denied"
	outcomeQuota      = "quota_exceeded"
	outcomeStorage    = "storage_failure"
	outcomeFailed     = "failed"
)

// DownloadUpdate re-checks every gate for the version, reserves one download from the quota
// and streams the file into the sink. Failed attempts give the reservation back.
func (e *Engine) DownloadUpdate(ctx context.Context, userID, versionID uint64, sink usecase.DownloadSink) (*entity.DownloadResult, error) {
	version, err := e.productRepo.GetVersion(ctx, versionID)
	if errors.Is(err, errs.ErrVersionNotFound) {
		return e.deny(userID, versionID, entity.VersionNotFoundDenial(), outcomeDenied), nil
	}
	if err != nil {
		return nil, err
	}

	license, err := e.licenseRepo.FindActive(ctx, userID, version.ProductID)
	if errors.Is(err, errs.ErrLicenseNotFound) {
		return e.deny(userID, versionID, entity.NoLicenseDenial(), outcomeDenied), nil
	}
	if err != nil {
		return nil, err
	}

	versions, err := e.productRepo.ListVersions(ctx, version.ProductID)
	if err != nil {
		return nil, err
	}
	current, err := e.effectiveCurrentVersion(ctx, license, versions)
	if err != nil {
		return nil, err
	}

	if denials := evaluateGates(license, version, current, e.now()); len(denials) > 0 {
		return e.deny(userID, versionID, denials[0], outcomeDenied), nil
	}

	reserved, err := e.licenseRepo.ReserveDownload(ctx, license.ID, e.now())
	if err != nil {
		return nil, err
	}
	if !reserved {
		return e.deny(userID, versionID, entity.QuotaExceededDenial(license.DownloadLimit), outcomeQuota), nil
	}

	record := &entity.UpdateDownloadRecord{
		ID:              e.newRecordID(),
		LicenseID:       license.ID,
		VersionID:       version.ID,
		Version:         version.Version,
		PreviousVersion: current,
		Status:          entity.DownloadStarted,
		StartedAt:       e.now(),
	}
	if err := e.downloadRepo.Create(ctx, record); err != nil {
		e.release(ctx, license.ID)
		return nil, err
	}

	sent, err := e.transfer(ctx, version, record.ID, sink)
	if err != nil {
		e.abort(ctx, record, err)
		if errs.IsStorageFailure(err) {
			e.metrics.DownloadAttempted(outcomeStorage)
		} else {
			e.metrics.DownloadAttempted(outcomeFailed)
		}
		return nil, err
	}

	cleanupCtx := context.WithoutCancel(ctx)
	if err := e.downloadRepo.Finish(cleanupCtx, record.ID, entity.DownloadCompleted, "", e.now()); err != nil {
		e.logger.Error("Failed to complete download record", map[string]any{
			"record_id": record.ID,
			"error":     err.Error(),
		})
	}
	if err := e.licenseRepo.SetLastVersionDownloaded(cleanupCtx, license.ID, version.Version, e.now()); err != nil {
		e.logger.Error("Failed to record last downloaded version", map[string]any{
			"license_id": license.ID,
			"error":      err.Error(),
		})
	}

	e.metrics.DownloadAttempted(outcomeDownloaded)
	e.logger.Info("Update downloaded", map[string]any{
		"user_id":          userID,
		"license_id":       license.ID,
		"version":          version.Version,
		"previous_version": current,
		"bytes":            sent,
	})

	return &entity.DownloadResult{
		Allowed:   true,
		RecordID:  record.ID,
		Version:   version.Version,
		BytesSent: sent,
	}, nil
}

// transfer resolves the version's file and copies it into the sink
func (e *Engine) transfer(ctx context.Context, version *entity.ProductVersion, recordID string, sink usecase.DownloadSink) (int64, error) {
	meta, err := e.files.Stat(ctx, version.FilePath)
	if err != nil {
		return 0, asStorageFailure(version.FilePath, recordID, err)
	}

	file, err := e.files.Open(ctx, version.FilePath)
	if err != nil {
		return 0, asStorageFailure(version.FilePath, recordID, err)
	}
	defer file.Close()

	w, err := sink(meta)
	if err != nil {
		return 0, fmt.Errorf("failed to open download sink: %w", err)
	}

	sent, err := io.Copy(w, file)
	if err != nil {
		return sent, fmt.Errorf("transfer of %s interrupted after %d bytes: %w", version.Version, sent, err)
	}
	return sent, nil
}

// abort marks the record failed and gives the quota reservation back
func (e *Engine) abort(ctx context.Context, record *entity.UpdateDownloadRecord, cause error) {
	cleanupCtx := context.WithoutCancel(ctx)

	if err := e.downloadRepo.Finish(cleanupCtx, record.ID, entity.DownloadFailed, cause.Error(), e.now()); err != nil {
		e.logger.Error("Failed to mark download record failed", map[string]any{
			"record_id": record.ID,
			"error":     err.Error(),
		})
	}
	e.release(cleanupCtx, record.LicenseID)

	e.logger.Warn("Download failed", map[string]any{
		"record_id":  record.ID,
		"license_id": record.LicenseID,
		"version":    record.Version,
		"error":      cause.Error(),
	})
}

func (e *Engine) release(ctx context.Context, licenseID uint64) {
	if err := e.licenseRepo.ReleaseDownload(context.WithoutCancel(ctx), licenseID, e.now()); err != nil {
		e.logger.Error("Failed to release download reservation", map[string]any{
			"license_id": licenseID,
			"error":      err.Error(),
		})
	}
}

func (e *Engine) deny(userID, versionID uint64, denial entity.Denial, outcome string) *entity.DownloadResult {
	e.metrics.DownloadAttempted(outcome)
	e.logger.Info("Download denied", map[string]any{
		"user_id":    userID,
		"version_id": versionID,
		"denial":     string(denial.Kind),
	})
	return entity.DeniedDownload(denial)
}

func asStorageFailure(path, recordID string, err error) error {
	var storageErr *errs.StorageFailureError
	if errors.As(err, &storageErr) {
		return errs.NewStorageFailureError(storageErr.Path, recordID, storageErr.Err)
	}
	return errs.NewStorageFailureError(path, recordID, err)
}
