package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLicenseQuota(t *testing.T) {
	l := &License{DownloadsUsed: 4, DownloadLimit: 5}
	assert.True(t, l.HasQuota())
	assert.Equal(t, 1, l.DownloadsRemaining())

	l.DownloadsUsed = 5
	assert.False(t, l.HasQuota())
	assert.Equal(t, 0, l.DownloadsRemaining())

	l.DownloadsUsed = 7
	assert.Equal(t, 0, l.DownloadsRemaining())
}

func TestLicenseDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Perpetual", func(t *testing.T) {
		l := &License{}
		assert.Nil(t, l.DaysRemaining(now))
		assert.False(t, l.UpdateWindowExpired(now))
	})

	t.Run("Partial day rounds up", func(t *testing.T) {
		expiry := now.Add(36 * time.Hour)
		l := &License{UpdateExpiresAt: &expiry}
		days := l.DaysRemaining(now)
		require.NotNil(t, days)
		assert.Equal(t, 2, *days)
	})

	t.Run("Expired", func(t *testing.T) {
		expiry := now.Add(-time.Hour)
		l := &License{UpdateExpiresAt: &expiry}
		days := l.DaysRemaining(now)
		require.NotNil(t, days)
		assert.Equal(t, 0, *days)
		assert.True(t, l.UpdateWindowExpired(now))
	})
}

func TestExtendedUpdateExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Running window extends from its end", func(t *testing.T) {
		expiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		l := &License{UpdateExpiresAt: &expiry}
		assert.Equal(t, time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC), *l.ExtendedUpdateExpiry(12, now))
	})

	t.Run("Lapsed window restarts from now", func(t *testing.T) {
		expiry := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		l := &License{UpdateExpiresAt: &expiry}
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *l.ExtendedUpdateExpiry(3, now))
	})

	t.Run("Perpetual license stays perpetual", func(t *testing.T) {
		l := &License{}
		assert.True(t, l.IsPerpetual())
		assert.Nil(t, l.ExtendedUpdateExpiry(6, now))
		assert.False(t, l.UpdateWindowExpired(now.AddDate(2, 0, 0)))
	})
}
