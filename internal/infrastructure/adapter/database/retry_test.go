package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func TestIsTransientError(t *testing.T) {
	serializeFailure := errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"Postgres serialization conflict", serializeFailure, true},
		{"Wrapped serialization conflict", fmt.Errorf("failed to apply event DON-1: %w", fmt.Errorf("database connection error: %w", serializeFailure)), true},
		{"Serialization failure text", errors.New("serialization failure"), true},
		{"SQLSTATE only", errors.New("ERROR: conflict (SQLSTATE 40001)"), true},
		{"Deadlock detected", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), true},
		{"SQLite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), true},
		{"Unique violation", errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"), false},
		{"Record not found", errors.New("record not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransientError(tt.err))
		})
	}
}

func TestRetryOnTransientError(t *testing.T) {
	config := RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}

	t.Run("Serialization conflict is retried", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), config, func() error {
			calls++
			if calls == 1 {
				return errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")
			}
			return nil
		}, nil, logger.NewNoopLogger())

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Permanent error is returned at once", func(t *testing.T) {
		calls := 0
		permanent := errors.New("record not found")
		err := RetryOnTransientError(context.Background(), config, func() error {
			calls++
			return permanent
		}, nil, logger.NewNoopLogger())

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})
}
