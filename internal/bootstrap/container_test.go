package bootstrap

import (
	"testing"
	"time"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contracts-electrical/tracker/internal/config"
	"github.com/contracts-electrical/tracker/internal/modules/handler"
	"github.com/contracts-electrical/tracker/internal/modules/service"
)

func TestRegister_WithoutS3(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Storage = config.StorageCfg{DataDir: dir, UsersFile: "users.xlsx", ProjectsDir: "projects"}

	inj := do.New()
	do.ProvideValue(inj, cfg)
	Register(inj)

	presigner, err := do.Invoke[service.Presigner](inj)
	require.NoError(t, err)
	assert.Nil(t, presigner)

	_, err = do.Invoke[*handler.AuthHandler](inj)
	require.NoError(t, err)
	_, err = do.Invoke[*handler.ProjectHandler](inj)
	require.NoError(t, err)
	_, err = do.Invoke[*handler.AttachmentHandler](inj)
	require.NoError(t, err)

	assert.FileExists(t, cfg.Storage.UsersPath())
	assert.DirExists(t, cfg.Storage.ProjectsPath())
}

func TestRegister_PresignExpireDefault(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "error"

	inj := do.New()
	do.ProvideValue(inj, cfg)
	Register(inj)

	expire := do.MustInvoke[func() time.Duration](inj)
	assert.Equal(t, 15*time.Minute, expire())
}
