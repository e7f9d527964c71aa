package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	config, err := decode(v)
	if err != nil {
		return nil, err
	}
	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// decode unmarshals viper state and converts the raw duration numbers
func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	processDurations(&config)
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// SetDefaults sets default values for non-critical configuration
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 60) // downloads stream through the write deadline
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.path", "payment-entitlement.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("gateway.timeout", 30)
	v.SetDefault("gateway.paypal.liveBaseUrl", "https://api-m.paypal.com")
	v.SetDefault("gateway.paypal.sandboxBaseUrl", "https://api-m.sandbox.paypal.com")
	v.SetDefault("gateway.mercadopago.baseUrl", "https://api.mercadopago.com")

	v.SetDefault("redis.ttl", 60)

	v.SetDefault("kafka.topic", "payment-notifications")
	v.SetDefault("kafka.clientId", "payment-entitlement")

	v.SetDefault("notification.maxAttempts", 10)
	v.SetDefault("notification.lease", 120)
	v.SetDefault("notification.batchSize", 50)

	v.SetDefault("storage.rootDir", "./data/updates")

	v.SetDefault("outbox.enabled", true)
	v.SetDefault("outbox.interval", 30)
}

// getEnvironment determines the environment to use based on PE_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets explicitly named environment variables win over file values,
// including keys AutomaticEnv cannot reach because of their camelCase path.
// Gateway credentials land in the settings seed, never in plain config sections.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"DB_DRIVER":                    "database.driver",
		"DB_HOST":                      "database.host",
		"DB_PORT":                      "database.port",
		"DB_USERNAME":                  "database.username",
		"DB_PASSWORD":                  "database.password",
		"DB_NAME":                      "database.database",
		"DB_SSL_MODE":                  "database.sslMode",
		"DB_PATH":                      "database.path",
		"SERVER_HOST":                  "server.host",
		"SERVER_PORT":                  "server.port",
		"LOGGER_LEVEL":                 "logger.level",
		"PAYPAL_CLIENT_ID":             "settings.paypal_client_id",
		"PAYPAL_CLIENT_SECRET":         "settings.paypal_client_secret",
		"PAYPAL_WEBHOOK_SECRET":        "settings.paypal_webhook_secret",
		"MERCADOPAGO_ACCESS_TOKEN":     "settings.mercadopago_access_token",
		"MERCADOPAGO_WEBHOOK_SECRET":   "settings.mercadopago_webhook_secret",
		"MERCADOPAGO_NOTIFICATION_URL": "gateway.mercadopago.notificationUrl",
		"REDIS_ADDR":                   "redis.addr",
		"REDIS_PASSWORD":               "redis.password",
		"STORAGE_ROOT_DIR":             "storage.rootDir",
		"CHECKOUT_SUCCESS_URL":         "checkout.successUrl",
		"CHECKOUT_CANCEL_URL":          "checkout.cancelUrl",
		"CHECKOUT_FAILURE_URL":         "checkout.failureUrl",
	}
	for name, key := range overrides {
		if value := os.Getenv(EnvPrefix + "_" + name); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt(EnvPrefix+"_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt(EnvPrefix+"_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if timeout := getEnvInt(EnvPrefix+"_GATEWAY_TIMEOUT_SECONDS", 0); timeout > 0 {
		v.Set("gateway.timeout", timeout)
	}
	if brokers := os.Getenv(EnvPrefix + "_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", strings.Split(brokers, ","))
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Gateway.Timeout = time.Duration(config.Gateway.Timeout) * time.Second
	config.Redis.TTL = time.Duration(config.Redis.TTL) * time.Second
	config.Notification.Lease = time.Duration(config.Notification.Lease) * time.Second
	config.Outbox.Interval = time.Duration(config.Outbox.Interval) * time.Second
}

// Validate checks the settings the service cannot start without
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.Database == "" {
			return fmt.Errorf("database host and name are required for postgres")
		}
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive")
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("gateway timeout must be positive")
	}
	if c.Checkout.FailureURL == "" {
		return fmt.Errorf("checkout failure url is required")
	}
	return nil
}
