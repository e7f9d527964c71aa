package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *LocalFileStore {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "app", "2.1.0"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app", "2.1.0", "app-2.1.0.zip"), []byte("zip-bytes"), 0o644))

	store, err := NewLocalFileStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLocalFileStore(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	t.Run("Stat and open", func(t *testing.T) {
		meta, err := store.Stat(ctx, "app/2.1.0/app-2.1.0.zip")
		require.NoError(t, err)
		assert.Equal(t, "app-2.1.0.zip", meta.Name)
		assert.Equal(t, int64(9), meta.Size)

		file, err := store.Open(ctx, "/app/2.1.0/app-2.1.0.zip")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "zip-bytes", string(content))
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := store.Stat(ctx, "app/9.9.9/missing.zip")
		assert.ErrorIs(t, err, errs.ErrStorageFailure)

		_, err = store.Open(ctx, "app/9.9.9/missing.zip")
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})

	t.Run("Directory is not a file", func(t *testing.T) {
		_, err := store.Stat(ctx, "app/2.1.0")
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})

	t.Run("Traversal is rejected", func(t *testing.T) {
		_, err := store.Open(ctx, "../../etc/passwd")
		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Stat(cancelled, "app/2.1.0/app-2.1.0.zip")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewLocalFileStoreMissingDir(t *testing.T) {
	_, err := NewLocalFileStore(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
