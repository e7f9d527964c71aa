package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	notificationport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/notification"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/checkout"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/entitlement"
	gatewayRegistry "github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/gateway"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/notification"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/renewal"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/settings"
	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/usecase/webhook"

	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway/mercadopago"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/gateway/paypal"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/metrics"
	notificationAdapter "github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/notification"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const poolMonitorInterval = 30 * coreport.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	warnProductionConfig(cfg, appLogger)

	// Trace context travels from inbound requests to gateway calls and notification messages
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tp := timeProvider.NewRealTimeProvider()
	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Connect to the database
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(rootCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(rootCtx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	settingsRepo := dbManager.SettingsRepository()
	if err := migration.SeedSettings(rootCtx, settingsRepo, cfg.Settings); err != nil {
		appLogger.Error("Failed to seed default settings", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheusRecorder(registry)
	if err != nil {
		appLogger.Error("Failed to register metrics", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if err := dbManager.RegisterMetrics(registry); err != nil {
		appLogger.Warn("Database pool metrics unavailable", map[string]any{"error": err.Error()})
	}
	dbManager.StartMonitoring(rootCtx, poolMonitorInterval)

	// Settings, optionally behind the Redis snapshot cache
	var settingsStore coreport.SettingsStore = settingsRepo
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.Connect(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			appLogger.Error("Failed to configure Redis", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer redisClient.Close()
		settingsStore = cache.NewSettingsCache(redisClient, settingsRepo, cfg.Redis.TTL, appLogger)
	}
	settingsProvider := settings.NewProvider(settingsStore)

	// Gateway adapters
	httpClient := gateway.NewHTTPClient(cfg.Gateway.Timeout)
	gateways := gatewayRegistry.NewRegistry(
		paypal.NewAdapter(paypal.Options{
			LiveBaseURL:    cfg.Gateway.PayPal.LiveBaseURL,
			SandboxBaseURL: cfg.Gateway.PayPal.SandboxBaseURL,
			ReturnURL:      cfg.Checkout.SuccessURL,
			CancelURL:      cfg.Checkout.CancelURL,
		}, settingsProvider, httpClient, tp, appLogger),
		mercadopago.NewAdapter(mercadopago.Options{
			BaseURL:         cfg.Gateway.MercadoPago.BaseURL,
			NotificationURL: cfg.Gateway.MercadoPago.NotificationURL,
			SuccessURL:      cfg.Checkout.SuccessURL,
			FailureURL:      cfg.Checkout.FailureURL,
			PendingURL:      cfg.Checkout.SuccessURL,
		}, settingsProvider, httpClient, appLogger),
	)
	appLogger.Info("Payment gateways registered", map[string]any{"methods": gateways.Methods()})

	// Notification delivery
	dispatcher, closeDispatcher, err := newDispatcher(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create notification dispatcher", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeDispatcher()

	uow := dbManager.CreateUnitOfWork()
	notifier := notification.NewNotifier(uow, dispatcher, settingsProvider, tp, recorder, appLogger,
		notification.WithMaxAttempts(cfg.Notification.MaxAttempts),
		notification.WithLease(coreport.Duration(cfg.Notification.Lease)),
		notification.WithBatchSize(cfg.Notification.BatchSize),
	)
	relay := notification.NewRelay(notifier, tp, appLogger, coreport.Duration(cfg.Outbox.Interval))
	if cfg.Outbox.Enabled {
		relay.Start(rootCtx)
	}

	// Update file store
	files, err := storage.NewLocalFileStore(cfg.Storage.RootDir)
	if err != nil {
		appLogger.Error("Failed to open update file store", map[string]any{
			"dir":   cfg.Storage.RootDir,
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer files.Close()

	// Initialize use cases
	paymentLedger := ledger.NewLedger(uow, ledger.NewReferenceGenerator(tp), tp, appLogger)
	renewals := renewal.NewQuoteService(dbManager.LicenseRepository(), dbManager.ProductRepository(), settingsProvider, appLogger)
	checkoutService := checkout.NewService(paymentLedger, gateways, settingsProvider, renewals,
		dbManager.ProductRepository(), recorder, appLogger)
	reconciler := webhook.NewReconciler(gateways, paymentLedger, notifier, tp, recorder, appLogger)
	engine := entitlement.NewEngine(dbManager.LicenseRepository(), dbManager.ProductRepository(),
		dbManager.DownloadRecordRepository(), files, tp, recorder, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, routes.MiddlewareOptions{
		Logger:         appLogger,
		TimeProvider:   tp,
		Observer:       recorder,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Setup routes
	routes.SetupRoutes(router, routes.Handlers{
		Checkout:    handler.NewCheckoutHandler(checkoutService, cfg.Checkout.FailureURL, appLogger),
		Webhook:     handler.NewWebhookHandler(reconciler, appLogger),
		Entitlement: handler.NewEntitlementHandler(engine, appLogger),
		Renewal:     handler.NewRenewalHandler(renewals, appLogger),
		Health:      handler.NewHealthHandler(dbManager, tp, appLogger),
		Metrics:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           otelhttp.NewHandler(router, "payment-entitlement"),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests before the relay so in-flight webhooks can still dispatch
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Stopping notification relay...", nil)
	relay.Shutdown()
	stopBackground()

	appLogger.Info("Server exited gracefully", nil)
}

// newDispatcher selects Kafka delivery when brokers are configured and log-only delivery otherwise
func newDispatcher(cfg *config.Config, appLogger coreport.Logger) (notificationport.Dispatcher, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Warn("No Kafka brokers configured, notifications are only logged", nil)
		return notificationAdapter.NewLogDispatcher(appLogger), func() {}, nil
	}

	dispatcher, err := notificationAdapter.NewKafkaDispatcher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ClientID, appLogger)
	if err != nil {
		return nil, nil, err
	}
	return dispatcher, func() {
		if err := dispatcher.Close(); err != nil {
			appLogger.Error("Failed to close Kafka producer", map[string]any{"error": err.Error()})
		}
	}, nil
}

// warnProductionConfig logs settings that are legal but risky in production
func warnProductionConfig(cfg *config.Config, appLogger coreport.Logger) {
	if cfg.Environment != config.Production {
		return
	}

	var warnings []string

	if cfg.Database.Driver == "postgres" {
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}
	if cfg.Database.Driver == "sqlite" {
		warnings = append(warnings, "sqlite serializes writers and is not meant for production traffic")
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 30*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for streaming downloads")
	}

	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			warnings = append(warnings, "server.allowedOrigins allows any origin")
			break
		}
	}

	if len(warnings) > 0 {
		appLogger.Warn("Potential issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}
}
