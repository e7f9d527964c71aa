package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/repository"
	timeadapter "github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*database.Manager, context.Context) {
	t.Helper()
	return dbtest.Open(t, timeadapter.NewManualTimeProvider(epoch)), context.Background()
}

func newTransaction(reference string) *entity.Transaction {
	return &entity.Transaction{
		Reference: reference,
		Kind:      entity.KindDonation,
		Amount:    decimal.RequireFromString("25.00"),
		Currency:  "USD",
		Gateway:   entity.GatewayPayPal,
		Status:    entity.StatusPending,
		CreatedAt: epoch,
		UpdatedAt: epoch,
	}
}

func TestTransactionRepository(t *testing.T) {
	manager, ctx := setup(t)
	repo := repository.NewTransactionRepository(manager.DB(), logger.NewNoopLogger())

	txn := newTransaction("DON-20260301-000000000001")
	require.NoError(t, repo.Create(ctx, txn))
	require.NotZero(t, txn.ID)

	t.Run("Duplicate reference", func(t *testing.T) {
		err := repo.Create(ctx, newTransaction("DON-20260301-000000000001"))
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("Lookup", func(t *testing.T) {
		found, err := repo.GetByReference(ctx, txn.Reference)
		require.NoError(t, err)
		assert.Equal(t, txn.ID, found.ID)
		assert.Equal(t, "25.00", entity.FormatAmount(found.Amount))
		assert.Equal(t, entity.StatusPending, found.Status)

		_, err = repo.GetByReference(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Gateway reference is written once", func(t *testing.T) {
		require.NoError(t, repo.SetGatewayReference(ctx, txn.ID, "ORDER-1", []byte(`{"id":"ORDER-1"}`), epoch))
		require.NoError(t, repo.SetGatewayReference(ctx, txn.ID, "ORDER-1", []byte(`{"id":"ORDER-1"}`), epoch))

		err := repo.SetGatewayReference(ctx, txn.ID, "ORDER-2", nil, epoch)
		assert.ErrorIs(t, err, errs.ErrGatewayReferenceImmutable)

		err = repo.SetGatewayReference(ctx, 9999, "ORDER-3", nil, epoch)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		found, err := repo.GetByGatewayReference(ctx, entity.GatewayPayPal, "ORDER-1")
		require.NoError(t, err)
		assert.Equal(t, txn.Reference, found.Reference)
		assert.JSONEq(t, `{"id":"ORDER-1"}`, string(found.GatewayResponse))
	})

	t.Run("Compare and set", func(t *testing.T) {
		final := decimal.RequireFromString("24.50")
		completedAt := epoch.Add(time.Minute)
		change := persistence.StatusChange{
			To:             entity.StatusCompleted,
			FinalAmount:    &final,
			CompletedAt:    &completedAt,
			WebhookPayload: []byte(`{"event":"x"}`),
			At:             completedAt,
		}

		applied, err := repo.CompareAndSetStatus(ctx, txn.ID, entity.StatusPending, change)
		require.NoError(t, err)
		assert.True(t, applied)

		applied, err = repo.CompareAndSetStatus(ctx, txn.ID, entity.StatusPending, change)
		require.NoError(t, err)
		assert.False(t, applied)

		found, err := repo.GetByReference(ctx, txn.Reference)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, found.Status)
		assert.True(t, found.WebhookReceived)
		require.NotNil(t, found.FinalAmount)
		assert.True(t, final.Equal(*found.FinalAmount))
		assert.True(t, found.Amount.Equal(decimal.RequireFromString("25")))
		require.NotNil(t, found.CompletedAt)
	})
}

func TestLicenseReserveDownloadRace(t *testing.T) {
	manager, ctx := setup(t)
	products := repository.NewProductRepository(manager.DB(), logger.NewNoopLogger())
	licenses := repository.NewLicenseRepository(manager.DB(), logger.NewNoopLogger())

	product := &entity.Product{Name: "App", Price: decimal.NewFromInt(100), Currency: "USD", CreatedAt: epoch}
	require.NoError(t, products.CreateProduct(ctx, product))
	license := &entity.License{UserID: 1, ProductID: product.ID, Active: true, DownloadLimit: 5, CreatedAt: epoch, UpdatedAt: epoch}
	require.NoError(t, licenses.Create(ctx, license))

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := licenses.ReserveDownload(ctx, license.ID, epoch)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, granted)
	stored, err := licenses.GetByID(ctx, license.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.DownloadsUsed)

	require.NoError(t, licenses.ReleaseDownload(ctx, license.ID, epoch))
	stored, err = licenses.GetByID(ctx, license.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.DownloadsUsed)

	found, err := licenses.FindActive(ctx, 1, product.ID)
	require.NoError(t, err)
	assert.Equal(t, license.ID, found.ID)

	_, err = licenses.FindActive(ctx, 2, product.ID)
	assert.ErrorIs(t, err, errs.ErrLicenseNotFound)
}

func TestProductVersions(t *testing.T) {
	manager, ctx := setup(t)
	products := repository.NewProductRepository(manager.DB(), logger.NewNoopLogger())

	product := &entity.Product{Name: "App", Price: decimal.NewFromInt(100), Currency: "USD", CreatedAt: epoch}
	require.NoError(t, products.CreateProduct(ctx, product))

	v1 := &entity.ProductVersion{ProductID: product.ID, Version: "1.0.0", ReleasedAt: epoch.AddDate(0, -2, 0), IsCurrent: true, CreatedAt: epoch}
	v2 := &entity.ProductVersion{ProductID: product.ID, Version: "1.1.0", ReleasedAt: epoch.AddDate(0, -1, 0), IsCurrent: true, CreatedAt: epoch}
	require.NoError(t, products.CreateVersion(ctx, v1))
	require.NoError(t, products.CreateVersion(ctx, v2))

	current, err := products.CurrentVersion(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", current.Version)

	versions, err := products.ListVersions(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "1.1.0", versions[0].Version)

	require.NoError(t, products.MarkCurrent(ctx, product.ID, v1.ID))
	current, err = products.CurrentVersion(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", current.Version)

	err = products.CreateVersion(ctx, &entity.ProductVersion{ProductID: product.ID, Version: "1.0.0", ReleasedAt: epoch, CreatedAt: epoch})
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	err = products.CreateVersion(ctx, &entity.ProductVersion{ProductID: product.ID, Version: "v2", ReleasedAt: epoch, CreatedAt: epoch})
	assert.ErrorIs(t, err, errs.ErrInvalidVersion)

	assert.ErrorIs(t, products.MarkCurrent(ctx, product.ID, 9999), errs.ErrVersionNotFound)
}

func TestNotificationOutbox(t *testing.T) {
	manager, ctx := setup(t)
	transactions := repository.NewTransactionRepository(manager.DB(), logger.NewNoopLogger())
	outbox := repository.NewNotificationRepository(manager.DB(), logger.NewNoopLogger())

	txn := newTransaction("DON-20260301-000000000002")
	require.NoError(t, transactions.Create(ctx, txn))

	event := &entity.NotificationEvent{
		ID:            "evt-1",
		TransactionID: txn.ID,
		Reference:     txn.Reference,
		Status:        entity.StatusCompleted,
		CreatedAt:     epoch,
	}
	inserted, err := outbox.Enqueue(ctx, event)
	require.NoError(t, err)
	assert.True(t, inserted)

	duplicate := *event
	duplicate.ID = "evt-2"
	inserted, err = outbox.Enqueue(ctx, &duplicate)
	require.NoError(t, err)
	assert.False(t, inserted)

	pending, err := outbox.ListPending(ctx, epoch, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	claimed, err := outbox.Claim(ctx, "evt-1", epoch, epoch.Add(2*time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = outbox.Claim(ctx, "evt-1", epoch.Add(time.Minute), epoch.Add(3*time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed)

	pending, err = outbox.ListPendingForTransaction(ctx, txn.ID, epoch.Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, outbox.MarkFailed(ctx, "evt-1", "smtp down"))
	pending, err = outbox.ListPending(ctx, epoch.Add(time.Minute), 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].Attempts)
	assert.Equal(t, "smtp down", pending[0].LastError)

	claimed, err = outbox.Claim(ctx, "evt-1", epoch.Add(time.Minute), epoch.Add(3*time.Minute))
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, outbox.MarkSent(ctx, "evt-1", epoch.Add(time.Minute)))

	pending, err = outbox.ListPending(ctx, epoch.Add(time.Hour), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestNotificationOutboxSkipsExhaustedEvents(t *testing.T) {
	manager, ctx := setup(t)
	transactions := repository.NewTransactionRepository(manager.DB(), logger.NewNoopLogger())
	outbox := repository.NewNotificationRepository(manager.DB(), logger.NewNoopLogger())
	const maxAttempts = 2

	enqueue := func(id, reference string, createdAt time.Time) {
		txn := newTransaction(reference)
		require.NoError(t, transactions.Create(ctx, txn))
		inserted, err := outbox.Enqueue(ctx, &entity.NotificationEvent{
			ID:            id,
			TransactionID: txn.ID,
			Reference:     reference,
			Status:        entity.StatusCompleted,
			CreatedAt:     createdAt,
		})
		require.NoError(t, err)
		require.True(t, inserted)
	}

	enqueue("dead-0", "DON-20260301-000000000010", epoch)
	enqueue("dead-1", "DON-20260301-000000000011", epoch.Add(time.Second))
	enqueue("fresh", "DON-20260301-000000000012", epoch.Add(time.Hour))

	for _, id := range []string{"dead-0", "dead-1"} {
		for i := 0; i < maxAttempts; i++ {
			claimed, err := outbox.Claim(ctx, id, epoch, epoch.Add(time.Minute))
			require.NoError(t, err)
			require.True(t, claimed)
			require.NoError(t, outbox.MarkFailed(ctx, id, "smtp down"))
		}
	}

	pending, err := outbox.ListPending(ctx, epoch.Add(2*time.Hour), maxAttempts, 2)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "fresh", pending[0].ID)

	pending, err = outbox.ListPending(ctx, epoch.Add(2*time.Hour), 0, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestDownloadRecords(t *testing.T) {
	manager, ctx := setup(t)
	products := repository.NewProductRepository(manager.DB(), logger.NewNoopLogger())
	licenses := repository.NewLicenseRepository(manager.DB(), logger.NewNoopLogger())
	records := repository.NewDownloadRecordRepository(manager.DB(), logger.NewNoopLogger())

	product := &entity.Product{Name: "App", Price: decimal.NewFromInt(100), Currency: "USD", CreatedAt: epoch}
	require.NoError(t, products.CreateProduct(ctx, product))
	version := &entity.ProductVersion{ProductID: product.ID, Version: "2.0.0", ReleasedAt: epoch, IsCurrent: true, CreatedAt: epoch}
	require.NoError(t, products.CreateVersion(ctx, version))
	license := &entity.License{UserID: 1, ProductID: product.ID, Active: true, DownloadLimit: 5, CreatedAt: epoch, UpdatedAt: epoch}
	require.NoError(t, licenses.Create(ctx, license))

	_, found, err := records.LatestCompletedVersion(ctx, license.ID)
	require.NoError(t, err)
	assert.False(t, found)

	record := &entity.UpdateDownloadRecord{
		ID:        "rec-1",
		LicenseID: license.ID,
		VersionID: version.ID,
		Version:   version.Version,
		Status:    entity.DownloadStarted,
		StartedAt: epoch,
	}
	require.NoError(t, records.Create(ctx, record))
	require.NoError(t, records.Finish(ctx, "rec-1", entity.DownloadCompleted, "", epoch.Add(time.Second)))
	assert.ErrorIs(t, records.Finish(ctx, "rec-1", entity.DownloadFailed, "late", epoch.Add(2*time.Second)), errs.ErrNotFound)

	stored, err := records.GetByID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DownloadCompleted, stored.Status)
	assert.True(t, stored.IsTerminal())

	latest, found, err := records.LatestCompletedVersion(ctx, license.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2.0.0", latest)
}

func TestSettingsRepository(t *testing.T) {
	manager, ctx := setup(t)
	settings := manager.SettingsRepository()

	require.NoError(t, settings.Set(ctx, entity.SettingCurrency, "EUR"))
	require.NoError(t, settings.EnsureDefaults(ctx, map[string]string{
		entity.SettingCurrency:  "USD",
		entity.SettingMaxAmount: "500",
	}))

	values, err := settings.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", values[entity.SettingCurrency])
	assert.Equal(t, "500", values[entity.SettingMaxAmount])
}
