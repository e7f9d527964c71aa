// Package dbtest opens a migrated throwaway SQLite database for tests
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
)

// Open connects to a fresh database file under t.TempDir and migrates it.
// A single connection serializes writers the way SQLite would anyway.
func Open(t testing.TB, timeProvider coreport.TimeProvider) *database.Manager {
	t.Helper()

	cfg := database.DefaultConfig()
	cfg.Driver = database.DriverSQLite
	cfg.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1
	cfg.LogLevel = "silent"
	cfg.RetryAttempts = 1

	manager := database.NewManager(cfg, logger.NewNoopLogger(), timeProvider)
	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	t.Cleanup(func() { _ = manager.Close() })

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return manager
}
