package renewal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/settings"
)

// QuoteService prices renewals from the product's base annual price and the configured discount
type QuoteService struct {
	licenseRepo persistence.LicenseRepository
	productRepo persistence.ProductRepository
	settings    *settings.Provider
	logger      coreport.Logger
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(
	licenseRepo persistence.LicenseRepository,
	productRepo persistence.ProductRepository,
	settingsProvider *settings.Provider,
	logger coreport.Logger,
) *QuoteService {
	return &QuoteService{
		licenseRepo: licenseRepo,
		productRepo: productRepo,
		settings:    settingsProvider,
		logger:      logger,
	}
}

// Quote returns the renewal price of a license for the given number of months
//
// Possible errors:
// - ErrUnsupportedRenewalPeriod: If months is not in the price table
// - ErrLicenseNotFound, ErrProductNotFound: If the license or its product doesn't exist
// - ErrPerpetualLicense: If the license already has perpetual updates
func (s *QuoteService) Quote(ctx context.Context, licenseID uint64, months int) (*usecase.RenewalQuote, error) {
	if _, err := entity.RenewalFactor(months); err != nil {
		return nil, err
	}

	license, err := s.licenseRepo.GetByID(ctx, licenseID)
	if err != nil {
		return nil, err
	}
	if license.IsPerpetual() {
		return nil, errs.NewValidationError("license_id", strconv.FormatUint(licenseID, 10), errs.ErrPerpetualLicense)
	}

	product, err := s.productRepo.GetProduct(ctx, license.ProductID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	amount, err := entity.ComputeRenewalPrice(product.Price, months, cfg.RenewalDiscountPercent)
	if err != nil {
		return nil, fmt.Errorf("failed to price renewal for license %d: %w", licenseID, err)
	}

	currency := product.Currency
	if currency == "" {
		currency = cfg.Currency
	}

	s.logger.Debug("Renewal quoted", map[string]any{
		"license_id": licenseID,
		"months":     months,
		"amount":     entity.FormatAmount(amount),
		"currency":   currency,
	})

	return &usecase.RenewalQuote{
		LicenseID:       licenseID,
		ProductID:       product.ID,
		Months:          months,
		Amount:          amount,
		Currency:        currency,
		DiscountPercent: cfg.RenewalDiscountPercent,
	}, nil
}
