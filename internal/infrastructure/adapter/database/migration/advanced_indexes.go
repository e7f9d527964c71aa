package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"gorm.io/gorm"
)

type indexStatement struct {
	name string
	sql  string
}

// portableIndexes use partial index syntax shared by PostgreSQL and SQLite
var portableIndexes = []indexStatement{
	{
		// a product never has two current versions
		name: "idx_product_versions_one_current",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS idx_product_versions_one_current
			ON product_versions (product_id) WHERE is_current`,
	},
	{
		name: "idx_notification_events_unsent",
		sql: `CREATE INDEX IF NOT EXISTS idx_notification_events_unsent
			ON notification_events (created_at) WHERE sent_at IS NULL`,
	},
	{
		name: "idx_transactions_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_pending
			ON transactions (created_at) WHERE status = 'pending'`,
	},
	{
		name: "idx_download_records_completed",
		sql: `CREATE INDEX IF NOT EXISTS idx_download_records_completed
			ON update_download_records (license_id, finished_at) WHERE status = 'completed'`,
	},
}

// postgresIndexes need PostgreSQL access methods
var postgresIndexes = []indexStatement{
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// AdvancedIndexManager manages indexes AutoMigrate cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates partial and dialect specific indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	statements := portableIndexes
	if m.isPostgres() {
		statements = append(append([]indexStatement{}, portableIndexes...), postgresIndexes...)
	}

	m.logger.Info("Creating advanced indexes", map[string]any{
		"count": len(statements),
	})

	for _, statement := range statements {
		if err := m.db.WithContext(ctx).Exec(statement.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": statement.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks; failures are logged and ignored
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	if !m.isPostgres() {
		return
	}

	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// licenses rows are rewritten on every download reservation
	tweaks := []string{
		`ALTER TABLE licenses SET (fillfactor = 80)`,
		`ALTER TABLE transactions SET (fillfactor = 90)`,
		`ALTER TABLE transactions ALTER COLUMN gateway_reference SET STATISTICS 1000`,
	}
	for _, tweak := range tweaks {
		if err := m.db.WithContext(ctx).Exec(tweak).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": tweak,
				"error":     err.Error(),
			})
		}
	}
}
