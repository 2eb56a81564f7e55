package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"news-backend/internal/infrastructure/metrics"
)

// Metrics records request count and latency per route. The route template
// (c.FullPath) is used instead of the raw URL so /api/news/:id stays one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
