package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  driver: sqlite
  path: ./test.db
checkout:
  failureUrl: "https://shop.test/failed"
settings:
  payment_currency: "EUR"
`

func loadFromYAML(t *testing.T, content string) *Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	SetDefaults(v)
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	processEnvOverrides(v)

	cfg, err := decode(v)
	require.NoError(t, err)
	return cfg
}

func TestDecodeAppliesDefaultsAndUnits(t *testing.T) {
	cfg := loadFromYAML(t, minimalYAML)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "https://api-m.sandbox.paypal.com", cfg.Gateway.PayPal.SandboxBaseURL)
	assert.Equal(t, 120*time.Second, cfg.Notification.Lease)
	assert.Equal(t, 30*time.Second, cfg.Outbox.Interval)
	assert.True(t, cfg.Outbox.Enabled)
	assert.Equal(t, "EUR", cfg.Settings["payment_currency"])
	assert.NoError(t, cfg.Validate())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PE_DB_PATH", "/var/lib/pe.db")
	t.Setenv("PE_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("PE_PAYPAL_CLIENT_ID", "client-123")
	t.Setenv("PE_GATEWAY_TIMEOUT_SECONDS", "7")
	t.Setenv("PE_CHECKOUT_FAILURE_URL", "https://other.test/failed")

	cfg := loadFromYAML(t, minimalYAML)

	assert.Equal(t, "/var/lib/pe.db", cfg.Database.Path)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "client-123", cfg.Settings["paypal_client_id"])
	assert.Equal(t, 7*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "https://other.test/failed", cfg.Checkout.FailureURL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: "postgres", Host: "db", Database: "pe"},
			Gateway:  GatewayConfig{Timeout: time.Second},
			Checkout: CheckoutConfig{FailureURL: "https://shop.test/failed"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid postgres", func(*Config) {}, ""},
		{"Valid sqlite", func(c *Config) { c.Database = DatabaseConfig{Driver: "sqlite", Path: "pe.db"} }, ""},
		{"Postgres without host", func(c *Config) { c.Database.Host = "" }, "host and name"},
		{"Sqlite without path", func(c *Config) { c.Database = DatabaseConfig{Driver: "sqlite"} }, "path is required"},
		{"Unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported database driver"},
		{"No port", func(c *Config) { c.Server.Port = 0 }, "port"},
		{"No gateway timeout", func(c *Config) { c.Gateway.Timeout = 0 }, "gateway timeout"},
		{"No failure page", func(c *Config) { c.Checkout.FailureURL = "" }, "failure url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
