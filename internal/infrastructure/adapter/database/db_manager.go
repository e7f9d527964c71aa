package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/repository"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	migrationMgr      *migration.MigrationManager
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger.With(map[string]any{"component": "database"}),
		timeProvider: timeProvider,
	}
}

// Connect opens the configured database, retrying the initial connection
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"name":   m.config.Database,
		"path":   m.config.Path,
	})

	var err error
	var gormDB *gorm.DB

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-m.timeProvider.After(coreport.Duration(m.config.RetryDelay)):
			}
		}

		gormDB, err = gorm.Open(m.dialector(), &gorm.Config{
			Logger: NewGormDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now().UTC()
			},
			PrepareStmt: m.config.Driver == DriverPostgres,
		})
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	m.db = gormDB
	m.migrationMgr = migration.NewMigrationManager(gormDB, m.logger, m.timeProvider)
	return m.db, nil
}

func (m *Manager) dialector() gorm.Dialector {
	if m.config.Driver == DriverSQLite {
		return sqlite.Open(m.config.DSN())
	}
	return postgres.Open(m.config.DSN())
}

// StartMonitoring starts the connection pool monitor
func (m *Manager) StartMonitoring(ctx context.Context, interval coreport.Duration) {
	if m.connectionMonitor != nil {
		return
	}
	m.connectionMonitor = NewConnectionPoolMonitor(m.db, m.logger, m.timeProvider)
	m.connectionMonitor.Start(ctx, interval)
}

// RegisterMetrics exposes database/sql pool statistics to Prometheus
func (m *Manager) RegisterMetrics(registerer prometheus.Registerer) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	name := m.config.Database
	if name == "" {
		name = m.config.Driver
	}
	return registerer.Register(collectors.NewDBStatsCollector(sqlDB, name))
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return m.migrationMgr.MigrateAll(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// ProductRepository returns a repository bound to the connection pool
func (m *Manager) ProductRepository() *repository.ProductRepository {
	return repository.NewProductRepository(m.db, m.logger)
}

// LicenseRepository returns a repository bound to the connection pool
func (m *Manager) LicenseRepository() *repository.LicenseRepository {
	return repository.NewLicenseRepository(m.db, m.logger)
}

// DownloadRecordRepository returns a repository bound to the connection pool
func (m *Manager) DownloadRecordRepository() *repository.DownloadRecordRepository {
	return repository.NewDownloadRecordRepository(m.db, m.logger)
}

// SettingsRepository returns a repository bound to the connection pool
func (m *Manager) SettingsRepository() *repository.SettingsRepository {
	return repository.NewSettingsRepository(m.db, m.timeProvider, m.logger)
}
