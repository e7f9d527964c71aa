package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/redis/go-redis/v9"
)

// DefaultSettingsKey is where the settings snapshot is cached
const DefaultSettingsKey = "payment-entitlement:settings"

// Connect initializes a Redis client from a redis:// URL or a host:port address
func Connect(addr, password string, db int) (*redis.Client, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}), nil
}

// SettingsCache is a read-through Redis cache in front of the settings store.
// Redis failures fall back to the store, so the cache never blocks a payment.
type SettingsCache struct {
	client redis.Cmdable
	source coreport.SettingsStore
	key    string
	ttl    time.Duration
	logger coreport.Logger
}

// NewSettingsCache wraps source with a Redis snapshot that lives for ttl
func NewSettingsCache(client redis.Cmdable, source coreport.SettingsStore, ttl time.Duration, logger coreport.Logger) *SettingsCache {
	return &SettingsCache{
		client: client,
		source: source,
		key:    DefaultSettingsKey,
		ttl:    ttl,
		logger: logger.With(map[string]any{"component": "settings_cache"}),
	}
}

// GetAll returns the cached snapshot or reloads it from the store
func (c *SettingsCache) GetAll(ctx context.Context) (map[string]string, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var values map[string]string
		if jsonErr := json.Unmarshal(raw, &values); jsonErr == nil {
			return values, nil
		}
		c.logger.Warn("Discarding undecodable settings snapshot", nil)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("Settings cache read failed, using store", map[string]any{
			"error": err.Error(),
		})
	}

	values, err := c.source.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(values); err == nil {
		if err := c.client.Set(ctx, c.key, encoded, c.ttl).Err(); err != nil {
			c.logger.Warn("Settings cache write failed", map[string]any{
				"error": err.Error(),
			})
		}
	}
	return values, nil
}

// Invalidate drops the snapshot so the next read goes to the store
func (c *SettingsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
