package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-entitlement/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Checkout    *handler.CheckoutHandler
	Webhook     *handler.WebhookHandler
	Entitlement *handler.EntitlementHandler
	Renewal     *handler.RenewalHandler
	Health      *handler.HealthHandler
	Metrics     http.Handler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	// Browser form post, answered with a redirect
	router.POST("/checkout", h.Checkout.SubmitCheckout)

	// Gateway notifications
	router.POST("/webhooks/:gateway", h.Webhook.Receive)

	api := router.Group("/api")
	{
		api.POST("/checkout", h.Checkout.StartCheckout)
		api.GET("/transactions/:reference", h.Checkout.GetTransaction)

		api.GET("/users/:userId/products/:productId/updates", h.Entitlement.CheckUpdates)
		api.GET("/users/:userId/versions/:versionId/download", h.Entitlement.DownloadUpdate)

		api.GET("/licenses/:licenseId/renewal-quote", h.Renewal.Quote)
	}
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	Logger         coreport.Logger
	TimeProvider   coreport.TimeProvider
	Observer       middleware.HTTPObserver
	AllowedOrigins []string
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, opts MiddlewareOptions) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.Logger(opts.Logger, opts.TimeProvider))
	if opts.Observer != nil {
		router.Use(middleware.Metrics(opts.Observer, opts.TimeProvider))
	}
	router.Use(middleware.CORS(opts.AllowedOrigins))
}
