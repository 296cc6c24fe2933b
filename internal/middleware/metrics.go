package middleware

import (
	"strconv"
	"time"

	"github.com/avdeenkov/seatbooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		// FullPath keeps the cardinality bounded (":id" instead of raw ids).
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
