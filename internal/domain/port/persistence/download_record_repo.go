package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// DownloadRecordRepository defines storage operations for update download attempts
type DownloadRecordRepository interface {
	// Create saves a record in the started state
	Create(ctx context.Context, record *entity.UpdateDownloadRecord) error

	// Finish moves a started record to completed or failed; terminal records are left untouched
	//
	// Possible errors:
	// - ErrNotFound: If no started record with the ID exists
	Finish(ctx context.Context, id string, status entity.DownloadStatus, errorMessage string, at time.Time) error

	// GetByID retrieves a record
	GetByID(ctx context.Context, id string) (*entity.UpdateDownloadRecord, error)

	// LatestCompletedVersion returns the version of the license's most recent completed download
	LatestCompletedVersion(ctx context.Context, licenseID uint64) (string, bool, error)
}
