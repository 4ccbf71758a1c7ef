package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/contracts-electrical/tracker/internal/metrics"
)

var opsPrefixes = []string{"/health", "/metrics", "/swagger"}

func isOpsPath(path string) bool {
	for _, p := range opsPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// ZapLogger returns a middleware that logs HTTP requests using zap logger and
// records their latency. Operational paths log at debug level.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		path := c.Request.URL.Path
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, route, strconv.Itoa(status), dur)

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", dur.String(),
			"clientIP", c.ClientIP(),
		}
		if isOpsPath(path) {
			log.Sugar().Debugw("HTTP", fields...)
			return
		}
		log.Sugar().Infow("HTTP", fields...)
	}
}
