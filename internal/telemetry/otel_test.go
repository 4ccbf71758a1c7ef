package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contracts-electrical/tracker/internal/config"
)

func TestSetupTracing_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Telemetry.Enabled = true

	tp, err := SetupTracing(cfg)
	require.NoError(t, err)
	assert.Nil(t, tp)
	assert.NoError(t, Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, "AlwaysOnSampler", Sampler(0).Description())
	assert.Equal(t, "AlwaysOnSampler", Sampler(1.5).Description())
	assert.Equal(t, "TraceIDRatioBased{0.25}", Sampler(0.25).Description())
}
