// Package middleware provides gin middleware for rootdnsd's
// management API.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/rootdns/internal/logging"
)

// slowRequestThreshold is deliberately tight: every route this API
// serves (health, stats, zone summary) reads in-memory state or the
// local SQLite journal, so
// anything slower than this points at lock contention or a stalled
// SQLite journal read, not normal variance.
const slowRequestThreshold = 250 * time.Millisecond

// SlogRequestLogger logs each request's method, path, status, and
// latency at Info, tagged with the "api" component so its lines sit
// alongside the UDP server's and the journal's in a filtered view.
// A request slower than slowRequestThreshold logs at Warn instead,
// since this API has no route that should ever legitimately be slow.
func SlogRequestLogger(logger *slog.Logger) gin.HandlerFunc {
	scoped := logging.WithComponent(logger, "api")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		args := []any{
			"method", method,
			"path", path,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if latency >= slowRequestThreshold {
			scoped.Warn("slow api request", args...)
		} else {
			scoped.Info("api request", args...)
		}
	}
}
