package store

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs each request at debug level with method, path,
// status, and latency.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// recovery recovers from panics in handlers and returns a 500 instead of
// crashing the process.
func recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"error", recovered,
			"stack", string(debug.Stack()),
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatus(500)
	})
}
