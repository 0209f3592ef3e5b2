package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/metrics"
)

// Metrics records request counts and latencies per route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// Unregistered route; avoid a label per unknown path
			path = "unmatched"
		}

		metrics.RequestsTotal.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
