package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProductRepository implements ProductRepository interface using GORM
type ProductRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func versionToEntity(m *model.ProductVersion) *entity.ProductVersion {
	return &entity.ProductVersion{
		ID:                 m.ID,
		ProductID:          m.ProductID,
		Version:            m.Version,
		ReleasedAt:         m.ReleasedAt,
		MinVersionRequired: m.MinVersionRequired,
		RequiresLicense:    m.RequiresLicense,
		IsCurrent:          m.IsCurrent,
		FilePath:           m.FilePath,
		FileSize:           m.FileSize,
		Changelog:          m.Changelog,
		CreatedAt:          m.CreatedAt,
	}
}

// CreateProduct saves a new product and assigns its ID
func (r *ProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productModel := model.Product{
		Name:      product.Name,
		Price:     product.Price,
		Currency:  product.Currency,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&productModel).Error; err != nil {
		r.logger.Error("Failed to create product", map[string]any{
			"name":  product.Name,
			"error": err.Error(),
		})
		return r.errorClassifier.Wrap(err)
	}
	product.ID = productModel.ID
	return nil
}

// GetProduct retrieves a product
func (r *ProductRepository) GetProduct(ctx context.Context, id uint64) (*entity.Product, error) {
	var productModel model.Product
	if err := r.db.WithContext(ctx).First(&productModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, r.errorClassifier.Wrap(err)
	}
	return &entity.Product{
		ID:        productModel.ID,
		Name:      productModel.Name,
		Price:     productModel.Price,
		Currency:  productModel.Currency,
		CreatedAt: productModel.CreatedAt,
	}, nil
}

// CreateVersion saves a new version; a version marked current replaces the previous current one
func (r *ProductRepository) CreateVersion(ctx context.Context, version *entity.ProductVersion) error {
	if !entity.IsValidVersion(version.Version) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidVersion, version.Version)
	}
	if version.MinVersionRequired != "" && !entity.IsValidVersion(version.MinVersionRequired) {
		return fmt.Errorf("%w: minimum %q", errs.ErrInvalidVersion, version.MinVersionRequired)
	}

	versionModel := model.ProductVersion{
		ProductID:          version.ProductID,
		Version:            version.Version,
		ReleasedAt:         version.ReleasedAt,
		MinVersionRequired: version.MinVersionRequired,
		RequiresLicense:    version.RequiresLicense,
		IsCurrent:          version.IsCurrent,
		FilePath:           version.FilePath,
		FileSize:           version.FileSize,
		Changelog:          version.Changelog,
		CreatedAt:          version.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if version.IsCurrent {
			if err := clearCurrent(tx, version.ProductID); err != nil {
				return err
			}
		}
		return tx.Omit("Product").Create(&versionModel).Error
	})
	if err != nil {
		r.logger.Error("Failed to create product version", map[string]any{
			"product_id": version.ProductID,
			"version":    version.Version,
			"error":      err.Error(),
		})
		return r.errorClassifier.Wrap(err)
	}

	version.ID = versionModel.ID
	return nil
}

// GetVersion retrieves a version by ID
func (r *ProductRepository) GetVersion(ctx context.Context, id uint64) (*entity.ProductVersion, error) {
	var versionModel model.ProductVersion
	if err := r.db.WithContext(ctx).First(&versionModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrVersionNotFound
		}
		return nil, r.errorClassifier.Wrap(err)
	}
	return versionToEntity(&versionModel), nil
}

// ListVersions returns every version of a product, newest release first
func (r *ProductRepository) ListVersions(ctx context.Context, productID uint64) ([]*entity.ProductVersion, error) {
	var models []model.ProductVersion
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("released_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to list product versions", map[string]any{
			"product_id": productID,
			"error":      err.Error(),
		})
		return nil, r.errorClassifier.Wrap(err)
	}

	versions := make([]*entity.ProductVersion, 0, len(models))
	for i := range models {
		versions = append(versions, versionToEntity(&models[i]))
	}
	return versions, nil
}

// CurrentVersion returns the version marked current for a product
func (r *ProductRepository) CurrentVersion(ctx context.Context, productID uint64) (*entity.ProductVersion, error) {
	var versionModel model.ProductVersion
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND is_current = ?", productID, true).
		First(&versionModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrVersionNotFound
		}
		return nil, r.errorClassifier.Wrap(err)
	}
	return versionToEntity(&versionModel), nil
}

// MarkCurrent makes versionID the only current version of its product
func (r *ProductRepository) MarkCurrent(ctx context.Context, productID, versionID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearCurrent(tx, productID); err != nil {
			return r.errorClassifier.Wrap(err)
		}

		result := tx.Model(&model.ProductVersion{}).
			Where("id = ? AND product_id = ?", versionID, productID).
			Update("is_current", true)
		if result.Error != nil {
			return r.errorClassifier.Wrap(result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.ErrVersionNotFound
		}

		r.logger.Info("Current product version changed", map[string]any{
			"product_id": productID,
			"version_id": versionID,
		})
		return nil
	})
}

func clearCurrent(tx *gorm.DB, productID uint64) error {
	return tx.Model(&model.ProductVersion{}).
		Where("product_id = ? AND is_current = ?", productID, true).
		Update("is_current", false).Error
}
