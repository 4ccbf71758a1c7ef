package bootstrap

import (
	"context"
	"time"

	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/contracts-electrical/tracker/internal/config"
	"github.com/contracts-electrical/tracker/internal/infra/blob"
	"github.com/contracts-electrical/tracker/internal/infra/logger"
	"github.com/contracts-electrical/tracker/internal/modules/handler"
	"github.com/contracts-electrical/tracker/internal/modules/repo"
	"github.com/contracts-electrical/tracker/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})
	Register(inj)
	return inj
}

// Register provides everything below the config. Callers must have provided
// a *config.Config already.
func Register(inj *do.Injector) {
	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// S3, optional
	do.Provide(inj, func(i *do.Injector) (service.Presigner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		if cfg.S3.Bucket == "" {
			log.Sugar().Infow("s3 bucket not configured, attachment uploads disabled")
			return nil, nil
		}
		s, err := blob.NewS3(context.Background(), cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return repo.NewUserRepo(cfg.Storage.UsersPath(), do.MustInvoke[*zap.Logger](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return repo.NewProjectRepo(cfg.Storage.ProjectsPath(), do.MustInvoke[*zap.Logger](i))
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.UserRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AttachmentService, error) {
		return service.NewAttachmentService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[service.Presigner](i),
			do.MustInvoke[func() time.Duration](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[service.AuthService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AttachmentHandler, error) {
		return handler.NewAttachmentHandler(do.MustInvoke[service.AttachmentService](i)), nil
	})
}
