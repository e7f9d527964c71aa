package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	values map[string]string
	err    error
	calls  int
}

func (s *countingStore) GetAll(context.Context) (map[string]string, error) {
	s.calls++
	return s.values, s.err
}

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestSettingsCacheFallsBackWhenRedisIsDown(t *testing.T) {
	client := unreachableClient()
	defer func() { _ = client.Close() }()

	store := &countingStore{values: map[string]string{"payment_currency": "EUR"}}
	cache := NewSettingsCache(client, store, time.Minute, logger.NewNoopLogger())

	values, err := cache.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "EUR", values["payment_currency"])
	assert.Equal(t, 1, store.calls)
}

func TestSettingsCachePropagatesStoreErrors(t *testing.T) {
	client := unreachableClient()
	defer func() { _ = client.Close() }()

	storeErr := errors.New("database down")
	cache := NewSettingsCache(client, &countingStore{err: storeErr}, time.Minute, logger.NewNoopLogger())

	_, err := cache.GetAll(context.Background())

	assert.ErrorIs(t, err, storeErr)
}

func TestConnect(t *testing.T) {
	client, err := Connect("redis://:secret@localhost:6380/2", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
	assert.Equal(t, "secret", client.Options().Password)

	client, err = Connect("localhost:6379", "pw", 1)
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", client.Options().Addr)
	assert.Equal(t, 1, client.Options().DB)

	_, err = Connect("redis://bad host:port", "", 0)
	assert.Error(t, err)
}
