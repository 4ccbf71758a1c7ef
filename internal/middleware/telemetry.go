package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

// OtelTracing returns a middleware for OpenTelemetry instrumentation.
// Health checks, metrics scrapes and swagger assets are not traced.
func OtelTracing(serviceName string) gin.HandlerFunc {
	otelMiddleware := otelgin.Middleware(serviceName)

	return func(c *gin.Context) {
		// Skip instrumentation for operational paths
		if isOpsPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		// Everything else (auth, projects, attachments) gets a server span
		otelMiddleware(c)
	}
}

// TraceID returns a middleware that adds the trace ID to response headers.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get current span from context
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			// Add trace ID to response header
			c.Header("X-Trace-Id", span.SpanContext().TraceID().String())
		}
		c.Next()
	}
}
