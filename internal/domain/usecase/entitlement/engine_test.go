package entitlement_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	storageport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/storage"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/entitlement"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database/dbtest"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/storage"
	timeadapter "github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/core"
	storagemocks "github.com/amirhossein-jamali/payment-entitlement/mocks/port/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const payload = "release-archive-bytes"

type catalog struct {
	ctx      context.Context
	manager  *database.Manager
	engine   *entitlement.Engine
	product  *entity.Product
	versions map[string]*entity.ProductVersion
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// newCatalog seeds a product with 1.0.0 (current), 1.1.0 and 2.0.0, which requires 1.1.0
func newCatalog(t *testing.T, files storageport.FileStore) *catalog {
	t.Helper()
	ctx := context.Background()
	clock := timeadapter.NewManualTimeProvider(epoch)
	manager := dbtest.Open(t, clock)

	if files == nil {
		dir := t.TempDir()
		for _, name := range []string{"app-1.0.0.zip", "app-1.1.0.zip", "app-2.0.0.zip"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(payload), 0o644))
		}
		store, err := storage.NewLocalFileStore(dir)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		files = store
	}

	products := manager.ProductRepository()
	product := &entity.Product{Name: "Desktop App", Price: decimal.RequireFromString("100"), Currency: "USD", CreatedAt: epoch}
	require.NoError(t, products.CreateProduct(ctx, product))

	versions := map[string]*entity.ProductVersion{}
	for _, v := range []*entity.ProductVersion{
		{Version: "1.0.0", ReleasedAt: epoch.Add(-days(200)), IsCurrent: true, RequiresLicense: true},
		{Version: "1.1.0", ReleasedAt: epoch.Add(-days(30)), RequiresLicense: true},
		{Version: "2.0.0", ReleasedAt: epoch.Add(-days(5)), MinVersionRequired: "1.1.0", RequiresLicense: true},
	} {
		v.ProductID = product.ID
		v.FilePath = "app-" + v.Version + ".zip"
		v.FileSize = int64(len(payload))
		v.CreatedAt = epoch
		require.NoError(t, products.CreateVersion(ctx, v))
		versions[v.Version] = v
	}

	return &catalog{
		ctx:     ctx,
		manager: manager,
		engine: entitlement.NewEngine(
			manager.LicenseRepository(),
			products,
			manager.DownloadRecordRepository(),
			files,
			clock,
			coreport.NoopMetrics{},
			logger.NewNoopLogger(),
		),
		product:  product,
		versions: versions,
	}
}

func (c *catalog) license(t *testing.T, userID uint64, expiresAt *time.Time, limit int) *entity.License {
	t.Helper()
	license := &entity.License{
		UserID:          userID,
		ProductID:       c.product.ID,
		Active:          true,
		UpdateExpiresAt: expiresAt,
		DownloadLimit:   limit,
		CreatedAt:       epoch,
		UpdatedAt:       epoch,
	}
	require.NoError(t, c.manager.LicenseRepository().Create(c.ctx, license))
	return license
}

func (c *catalog) reload(t *testing.T, license *entity.License) *entity.License {
	t.Helper()
	fresh, err := c.manager.LicenseRepository().GetByID(c.ctx, license.ID)
	require.NoError(t, err)
	return fresh
}

func intoBuffer(buf *bytes.Buffer) func(entity.FileMeta) (io.Writer, error) {
	return func(entity.FileMeta) (io.Writer, error) { return buf, nil }
}

func denialKinds(denials []entity.Denial) []entity.DenialKind {
	kinds := make([]entity.DenialKind, 0, len(denials))
	for _, d := range denials {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

func TestCheckUpdates(t *testing.T) {
	t.Run("Lists newer versions with their gates", func(t *testing.T) {
		c := newCatalog(t, nil)
		expires := epoch.Add(days(30))
		license := c.license(t, 1, &expires, 3)

		status, err := c.engine.CheckUpdates(c.ctx, 1, c.product.ID)

		require.NoError(t, err)
		assert.True(t, status.HasLicense)
		assert.Equal(t, license.ID, status.LicenseID)
		assert.Equal(t, "1.0.0", status.CurrentVersion)
		assert.Equal(t, "2.0.0", status.LatestVersion)
		require.NotNil(t, status.DaysRemaining)
		assert.Equal(t, 30, *status.DaysRemaining)
		assert.Equal(t, 3, status.DownloadsRemaining)

		require.Len(t, status.Updates, 2)
		assert.Equal(t, "2.0.0", status.Updates[0].Version)
		assert.False(t, status.Updates[0].Eligible)
		assert.Equal(t, []entity.DenialKind{entity.DenialMinimumVersion}, denialKinds(status.Updates[0].Denials))
		assert.Equal(t, "1.1.0", status.Updates[1].Version)
		assert.True(t, status.Updates[1].Eligible)

		touched := c.reload(t, license)
		require.NotNil(t, touched.LastUpdateCheck)
		assert.True(t, epoch.Equal(*touched.LastUpdateCheck))
	})

	t.Run("Without a license", func(t *testing.T) {
		c := newCatalog(t, nil)

		status, err := c.engine.CheckUpdates(c.ctx, 42, c.product.ID)

		require.NoError(t, err)
		assert.False(t, status.HasLicense)
		require.NotNil(t, status.Denial)
		assert.Equal(t, entity.DenialNoLicense, status.Denial.Kind)
		assert.Empty(t, status.Updates)
		assert.Equal(t, "1.0.0", status.CurrentVersion)
	})

	t.Run("Expired window reports every gate", func(t *testing.T) {
		c := newCatalog(t, nil)
		expired := epoch.Add(-days(60))
		c.license(t, 1, &expired, 3)

		status, err := c.engine.CheckUpdates(c.ctx, 1, c.product.ID)

		require.NoError(t, err)
		require.NotNil(t, status.DaysRemaining)
		assert.Zero(t, *status.DaysRemaining)
		require.Len(t, status.Updates, 2)
		assert.Equal(t, []entity.DenialKind{
			entity.DenialEntitlementExpired,
			entity.DenialReleasedAfterExpiry,
			entity.DenialMinimumVersion,
		}, denialKinds(status.Updates[0].Denials))
		assert.Equal(t, []entity.DenialKind{
			entity.DenialEntitlementExpired,
			entity.DenialReleasedAfterExpiry,
		}, denialKinds(status.Updates[1].Denials))
	})

	t.Run("Perpetual license", func(t *testing.T) {
		c := newCatalog(t, nil)
		c.license(t, 1, nil, 3)

		status, err := c.engine.CheckUpdates(c.ctx, 1, c.product.ID)

		require.NoError(t, err)
		assert.Nil(t, status.DaysRemaining)
	})
}

func TestDownloadUpdate(t *testing.T) {
	t.Run("Streams the file and advances the current version", func(t *testing.T) {
		c := newCatalog(t, nil)
		expires := epoch.Add(days(30))
		license := c.license(t, 1, &expires, 3)
		var buf bytes.Buffer

		result, err := c.engine.DownloadUpdate(c.ctx, 1, c.versions["1.1.0"].ID, intoBuffer(&buf))

		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, "1.1.0", result.Version)
		assert.Equal(t, int64(len(payload)), result.BytesSent)
		assert.Equal(t, payload, buf.String())
		assert.NotEmpty(t, result.RecordID)

		stored := c.reload(t, license)
		assert.Equal(t, 1, stored.DownloadsUsed)
		assert.Equal(t, "1.1.0", stored.LastVersionDownloaded)

		record, err := c.manager.DownloadRecordRepository().GetByID(c.ctx, result.RecordID)
		require.NoError(t, err)
		assert.Equal(t, entity.DownloadCompleted, record.Status)
		assert.Equal(t, "1.0.0", record.PreviousVersion)

		status, err := c.engine.CheckUpdates(c.ctx, 1, c.product.ID)
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", status.CurrentVersion)
		require.Len(t, status.Updates, 1)
		assert.True(t, status.Updates[0].Eligible)
	})

	t.Run("Gate denial does not use quota", func(t *testing.T) {
		c := newCatalog(t, nil)
		expires := epoch.Add(days(30))
		license := c.license(t, 1, &expires, 3)

		result, err := c.engine.DownloadUpdate(c.ctx, 1, c.versions["2.0.0"].ID, intoBuffer(&bytes.Buffer{}))

		require.NoError(t, err)
		assert.False(t, result.Allowed)
		require.NotNil(t, result.Denial)
		assert.Equal(t, entity.DenialMinimumVersion, result.Denial.Kind)
		assert.Zero(t, c.reload(t, license).DownloadsUsed)
	})

	t.Run("Unknown version", func(t *testing.T) {
		c := newCatalog(t, nil)

		result, err := c.engine.DownloadUpdate(c.ctx, 1, 9999, intoBuffer(&bytes.Buffer{}))

		require.NoError(t, err)
		require.NotNil(t, result.Denial)
		assert.Equal(t, entity.DenialVersionNotFound, result.Denial.Kind)
	})

	t.Run("No license", func(t *testing.T) {
		c := newCatalog(t, nil)

		result, err := c.engine.DownloadUpdate(c.ctx, 7, c.versions["1.1.0"].ID, intoBuffer(&bytes.Buffer{}))

		require.NoError(t, err)
		require.NotNil(t, result.Denial)
		assert.Equal(t, entity.DenialNoLicense, result.Denial.Kind)
	})

	t.Run("Concurrent downloads never exceed the limit", func(t *testing.T) {
		c := newCatalog(t, nil)
		license := c.license(t, 1, nil, 2)

		const attempts = 10
		var (
			mu      sync.Mutex
			allowed int
			denied  int
			wg      sync.WaitGroup
		)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				result, err := c.engine.DownloadUpdate(c.ctx, 1, c.versions["1.1.0"].ID, intoBuffer(&bytes.Buffer{}))
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				if result.Allowed {
					allowed++
				} else if assert.NotNil(t, result.Denial) {
					assert.Equal(t, entity.DenialQuotaExceeded, result.Denial.Kind)
					denied++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 2, allowed)
		assert.Equal(t, attempts-2, denied)
		assert.Equal(t, 2, c.reload(t, license).DownloadsUsed)
	})

	t.Run("Sink failure gives the reservation back", func(t *testing.T) {
		c := newCatalog(t, nil)
		license := c.license(t, 1, nil, 1)
		sink := func(entity.FileMeta) (io.Writer, error) { return nil, errors.New("client went away") }

		_, err := c.engine.DownloadUpdate(c.ctx, 1, c.versions["1.1.0"].ID, sink)

		require.Error(t, err)
		assert.Zero(t, c.reload(t, license).DownloadsUsed)
	})
}

func TestDownloadUpdateStorageFailure(t *testing.T) {
	files := storagemocks.NewMockFileStore(t)
	files.EXPECT().Stat(mock.Anything, "app-1.1.0.zip").
		Return(entity.FileMeta{}, errs.NewStorageFailureError("app-1.1.0.zip", "", os.ErrNotExist)).Once()

	c := newCatalog(t, files)
	license := c.license(t, 1, nil, 3)

	metrics := coremocks.NewMockMetricsRecorder(t)
	metrics.EXPECT().DownloadAttempted("storage_failure").Once()
	engine := entitlement.NewEngine(
		c.manager.LicenseRepository(),
		c.manager.ProductRepository(),
		c.manager.DownloadRecordRepository(),
		files,
		timeadapter.NewManualTimeProvider(epoch),
		metrics,
		logger.NewNoopLogger(),
	)

	_, err := engine.DownloadUpdate(c.ctx, 1, c.versions["1.1.0"].ID, intoBuffer(&bytes.Buffer{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorageFailure)
	var storageErr *errs.StorageFailureError
	require.ErrorAs(t, err, &storageErr)
	assert.NotEmpty(t, storageErr.RecordID)

	assert.Zero(t, c.reload(t, license).DownloadsUsed)
	record, err := c.manager.DownloadRecordRepository().GetByID(c.ctx, storageErr.RecordID)
	require.NoError(t, err)
	assert.Equal(t, entity.DownloadFailed, record.Status)
}
