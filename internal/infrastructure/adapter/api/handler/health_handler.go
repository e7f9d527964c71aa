package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * coreport.Second

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// HealthHandler serves the liveness probe
type HealthHandler struct {
	db           Pinger
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := h.timeProvider.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "down",
			Time:     h.timeProvider.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Database: "up",
		Time:     h.timeProvider.Now(),
	})
}
