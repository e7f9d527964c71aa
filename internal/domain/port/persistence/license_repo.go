package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// LicenseRepository defines storage operations for licenses
type LicenseRepository interface {
	// Create saves a new license and assigns its ID
	Create(ctx context.Context, license *entity.License) error

	// GetByID retrieves a license
	//
	// Possible errors:
	// - ErrLicenseNotFound: If the license doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.License, error)

	// FindActive returns the user's active license for a product
	//
	// Possible errors:
	// - ErrLicenseNotFound: If the user holds no active license for the product
	FindActive(ctx context.Context, userID, productID uint64) (*entity.License, error)

	// TouchUpdateCheck records when updates were last checked
	TouchUpdateCheck(ctx context.Context, id uint64, at time.Time) error

	// ReserveDownload increments downloads_used in a single conditional statement
	// and reports false when the limit is already reached.
	ReserveDownload(ctx context.Context, id uint64, at time.Time) (bool, error)

	// ReleaseDownload gives back a reservation made by ReserveDownload
	ReleaseDownload(ctx context.Context, id uint64, at time.Time) error

	// SetLastVersionDownloaded records the version of the latest completed download
	SetLastVersionDownloaded(ctx context.Context, id uint64, version string, at time.Time) error

	// ExtendUpdateWindow moves the update expiry to expiresAt
	ExtendUpdateWindow(ctx context.Context, id uint64, expiresAt time.Time, at time.Time) error
}
