package persistence

import (
	"context"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// ProductRepository defines storage operations for products and their versions
type ProductRepository interface {
	// CreateProduct saves a new product and assigns its ID
	CreateProduct(ctx context.Context, product *entity.Product) error

	// GetProduct retrieves a product
	//
	// Possible errors:
	// - ErrProductNotFound: If the product doesn't exist
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)

	// CreateVersion saves a new version; a version marked current replaces the previous current one
	//
	// Possible errors:
	// - ErrConstraintViolation: If the version string already exists for the product
	CreateVersion(ctx context.Context, version *entity.ProductVersion) error

	// GetVersion retrieves a version by ID
	//
	// Possible errors:
	// - ErrVersionNotFound: If the version doesn't exist
	GetVersion(ctx context.Context, id uint64) (*entity.ProductVersion, error)

	// ListVersions returns every version of a product, newest release first
	ListVersions(ctx context.Context, productID uint64) ([]*entity.ProductVersion, error)

	// CurrentVersion returns the version marked current for a product
	//
	// Possible errors:
	// - ErrVersionNotFound: If no version is marked current
	CurrentVersion(ctx context.Context, productID uint64) (*entity.ProductVersion, error)

	// MarkCurrent makes versionID the only current version of its product
	MarkCurrent(ctx context.Context, productID, versionID uint64) error
}
