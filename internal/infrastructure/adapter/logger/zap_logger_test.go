package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (core.Logger, *observer.ObservedLogs) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	zapCore, logs := observer.New(level)
	return NewZapLoggerWithCore(zapCore, level), logs
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	log, logs := newObserved()

	log.Debug("hidden", nil)
	log.Info("shown", nil)
	assert.Equal(t, 1, logs.Len())

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	log.Debug("now shown", nil)
	assert.Equal(t, 2, logs.Len())

	log.SetLevel(core.LogLevelError)
	log.Warn("hidden again", nil)
	assert.Equal(t, 2, logs.Len())
}

func TestZapLogger_WithAddsFields(t *testing.T) {
	log, logs := newObserved()

	child := log.With(map[string]any{"gateway": "paypal"})
	child.Info("webhook received", map[string]any{"err": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "paypal", fields["gateway"])
	assert.Equal(t, "boom", fields["err"])
}

func TestZapLogger_ChildSharesLevel(t *testing.T) {
	log, logs := newObserved()
	child := log.With(map[string]any{"component": "ledger"})

	log.SetLevel(core.LogLevelWarn)
	child.Info("filtered", nil)
	assert.Equal(t, 0, logs.Len())
}
