package repo

import (
	"time"

	"go.opentelemetry.io/otel"

	"github.com/contracts-electrical/tracker/internal/metrics"
)

var tracer = otel.Tracer("github.com/contracts-electrical/tracker/internal/modules/repo")

func observe(store, operation string, start time.Time) {
	metrics.RecordStoreOp(store, operation, time.Since(start))
}
