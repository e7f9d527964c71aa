package renewal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/settings"
	coremocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	ctx := context.Background()
	expires := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	license := &entity.License{ID: 5, ProductID: 9, UpdateExpiresAt: &expires}
	product := &entity.Product{ID: 9, Price: decimal.RequireFromString("100.00"), Currency: "EUR"}

	newService := func(t *testing.T, values map[string]string) (*QuoteService, *persistencemocks.MockLicenseRepository, *persistencemocks.MockProductRepository) {
		licenseRepo := persistencemocks.NewMockLicenseRepository(t)
		productRepo := persistencemocks.NewMockProductRepository(t)
		store := coremocks.NewMockSettingsStore(t)
		store.EXPECT().GetAll(mock.Anything).Return(values, nil).Maybe()
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		return NewQuoteService(licenseRepo, productRepo, settings.NewProvider(store), mockLogger), licenseRepo, productRepo
	}

	t.Run("Applies factor and discount", func(t *testing.T) {
		service, licenseRepo, productRepo := newService(t, map[string]string{entity.SettingRenewalDiscount: "10"})
		licenseRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(license, nil).Once()
		productRepo.EXPECT().GetProduct(mock.Anything, uint64(9)).Return(product, nil).Once()

		quote, err := service.Quote(ctx, 5, 12)

		require.NoError(t, err)
		assert.Equal(t, "72.00", entity.FormatAmount(quote.Amount))
		assert.Equal(t, "EUR", quote.Currency)
		assert.Equal(t, uint64(9), quote.ProductID)
		assert.Equal(t, 12, quote.Months)
		assert.True(t, decimal.NewFromInt(10).Equal(quote.DiscountPercent))
	})

	t.Run("Each supported period", func(t *testing.T) {
		expected := map[int]string{3: "25.00", 6: "45.00", 12: "80.00", 24: "140.00"}
		for months, amount := range expected {
			service, licenseRepo, productRepo := newService(t, map[string]string{})
			licenseRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(license, nil).Once()
			productRepo.EXPECT().GetProduct(mock.Anything, uint64(9)).Return(product, nil).Once()

			quote, err := service.Quote(ctx, 5, months)

			require.NoError(t, err)
			assert.Equal(t, amount, entity.FormatAmount(quote.Amount), "months=%d", months)
		}
	})

	t.Run("Falls back to the configured currency", func(t *testing.T) {
		service, licenseRepo, productRepo := newService(t, map[string]string{entity.SettingCurrency: "brl"})
		licenseRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(license, nil).Once()
		productRepo.EXPECT().GetProduct(mock.Anything, uint64(9)).
			Return(&entity.Product{ID: 9, Price: decimal.RequireFromString("50")}, nil).Once()

		quote, err := service.Quote(ctx, 5, 3)

		require.NoError(t, err)
		assert.Equal(t, "BRL", quote.Currency)
		assert.Equal(t, "12.50", entity.FormatAmount(quote.Amount))
	})

	t.Run("Unsupported period is rejected before any lookup", func(t *testing.T) {
		service, _, _ := newService(t, nil)

		_, err := service.Quote(ctx, 5, 7)

		assert.ErrorIs(t, err, errs.ErrUnsupportedRenewalPeriod)
	})

	t.Run("Missing license", func(t *testing.T) {
		service, licenseRepo, _ := newService(t, nil)
		licenseRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrLicenseNotFound).Once()

		_, err := service.Quote(ctx, 5, 12)

		assert.ErrorIs(t, err, errs.ErrLicenseNotFound)
	})

	t.Run("Perpetual license cannot be renewed", func(t *testing.T) {
		service, licenseRepo, _ := newService(t, nil)
		licenseRepo.EXPECT().GetByID(mock.Anything, uint64(6)).
			Return(&entity.License{ID: 6, ProductID: 9}, nil).Once()

		_, err := service.Quote(ctx, 6, 12)

		assert.True(t, errs.IsValidationError(err))
		assert.ErrorIs(t, err, errs.ErrPerpetualLicense)
	})

	t.Run("Invalid discount setting", func(t *testing.T) {
		service, licenseRepo, productRepo := newService(t, map[string]string{entity.SettingRenewalDiscount: "150"})
		licenseRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(license, nil).Once()
		productRepo.EXPECT().GetProduct(mock.Anything, uint64(9)).Return(product, nil).Once()

		_, err := service.Quote(ctx, 5, 12)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidDiscount))
	})
}
