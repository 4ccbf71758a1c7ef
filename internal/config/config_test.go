package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, "release", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join("data", "users.xlsx"), cfg.Storage.UsersPath())
	assert.Equal(t, filepath.Join("data", "projects"), cfg.Storage.ProjectsPath())
	assert.Equal(t, []string{
		"https://contracts-electrical.azurewebsites.net",
		"http://localhost:8080",
	}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 900, cfg.S3.PresignExpireSec)
	assert.Empty(t, cfg.S3.Bucket)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TRACKER_BUCKET", "site-photos")

	yaml := `
app:
  env: debug
  port: 8100
storage:
  dataDir: /var/lib/tracker
cors:
  allowOrigins:
    - https://example.org
s3:
  bucket: ${TRACKER_BUCKET}
`
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.Env)
	assert.Equal(t, 8100, cfg.App.Port)
	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, filepath.Join("/var/lib/tracker", "users.xlsx"), cfg.Storage.UsersPath())
	assert.Equal(t, []string{"https://example.org"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "site-photos", cfg.S3.Bucket)
}
