package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tracker",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Store operation latency (seconds)
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tracker",
			Name:      "store_operation_duration_seconds",
			Help:      "File store operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"store", "operation"},
	)

	// Project documents skipped during directory scans
	ProjectFilesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "project_files_skipped_total",
			Help:      "Project files that could not be read or parsed during a scan",
		},
	)

	// Signups and logins by outcome
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tracker",
			Name:      "auth_attempts_total",
			Help:      "Signup and login attempts by outcome",
		},
		[]string{"action", "outcome"}, // action: signup, login
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordStoreOp(store, operation string, duration time.Duration) {
	StoreOpDuration.WithLabelValues(store, operation).Observe(duration.Seconds())
}

func IncProjectFilesSkipped(n int) {
	ProjectFilesSkipped.Add(float64(n))
}

func IncAuthAttempt(action, outcome string) {
	AuthAttempts.WithLabelValues(action, outcome).Inc()
}
