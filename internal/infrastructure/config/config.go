package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment  string             `mapstructure:"environment"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Gateway      GatewayConfig      `mapstructure:"gateway"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	Notification NotificationConfig `mapstructure:"notification"`
	Storage      StorageConfig      `mapstructure:"storage"`
	Checkout     CheckoutConfig     `mapstructure:"checkout"`
	Outbox       OutboxConfig       `mapstructure:"outbox"`
	Settings     map[string]string  `mapstructure:"settings"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// GatewayConfig contains the payment gateway endpoints
type GatewayConfig struct {
	Timeout     time.Duration     `mapstructure:"timeout"` // seconds
	PayPal      PayPalConfig      `mapstructure:"paypal"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
}

// PayPalConfig contains PayPal REST API endpoints; credentials live in the settings store
type PayPalConfig struct {
	LiveBaseURL    string `mapstructure:"liveBaseUrl"`
	SandboxBaseURL string `mapstructure:"sandboxBaseUrl"`
}

// MercadoPagoConfig contains MercadoPago API endpoints; the access token lives in the settings store
type MercadoPagoConfig struct {
	BaseURL         string `mapstructure:"baseUrl"`
	NotificationURL string `mapstructure:"notificationUrl"`
}

// RedisConfig contains the settings cache connection; an empty address disables the cache
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"` // seconds
}

// KafkaConfig contains the notification producer settings; no brokers means log-only delivery
type KafkaConfig struct {
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	ClientID string   `mapstructure:"clientId"`
}

// NotificationConfig contains outbox dispatch settings
type NotificationConfig struct {
	MaxAttempts int           `mapstructure:"maxAttempts"`
	Lease       time.Duration `mapstructure:"lease"` // seconds
	BatchSize   int           `mapstructure:"batchSize"`
}

// StorageConfig contains the update file store location
type StorageConfig struct {
	RootDir string `mapstructure:"rootDir"`
}

// CheckoutConfig contains browser redirect targets
type CheckoutConfig struct {
	SuccessURL string `mapstructure:"successUrl"`
	CancelURL  string `mapstructure:"cancelUrl"`
	FailureURL string `mapstructure:"failureUrl"`
}

// OutboxConfig contains the relay worker settings
type OutboxConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"` // seconds
}
