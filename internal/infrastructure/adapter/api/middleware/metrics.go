package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/payment-entitlement/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// HTTPObserver records request latency per route template
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics middleware reports every request to the observer. Unmatched paths share one label.
func Metrics(observer HTTPObserver, tp coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := tp.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), tp.Since(start).Std())
	}
}
