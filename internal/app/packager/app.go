package packagerapp

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	pkgdomain "github.com/10Narratives/faaspack/internal/domains/packaging"
	artifactrepo "github.com/10Narratives/faaspack/internal/repositories/artifacts"
	imagerepo "github.com/10Narratives/faaspack/internal/repositories/images"
	supervisorrepo "github.com/10Narratives/faaspack/internal/repositories/supervisor"
	pkgsrv "github.com/10Narratives/faaspack/internal/services/packaging"
)

type App struct {
	cfg      *Config
	log      *zap.Logger
	packager *pkgsrv.Service
	uploader pkgdomain.ArtifactUploader
}

func NewApp(cfg *Config, log *zap.Logger) (*App, error) {
	images, err := imagerepo.NewRepository()
	if err != nil {
		return nil, err
	}

	packager := pkgsrv.NewService(log, supervisorrepo.NewRepository(nil, ""), images)

	var uploader pkgdomain.ArtifactUploader
	if cfg.ObjectStorage.DeploymentBucket != "" {
		objectStorage, err := minio.New(cfg.ObjectStorage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.ObjectStorage.User, cfg.ObjectStorage.Password, ""),
			Secure: cfg.ObjectStorage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("cannot create object storage client: %w", err)
		}

		uploader, err = artifactrepo.NewRepository(objectStorage, cfg.ObjectStorage.DeploymentBucket)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		cfg:      cfg,
		log:      log,
		packager: packager,
		uploader: uploader,
	}, nil
}

// Package builds the artifacts of the named functions, or of every configured
// function when names is empty. Builds are independent pipelines, so they run
// concurrently; the first failure cancels the rest.
func (a *App) Package(ctx context.Context, names ...string) error {
	fns, err := a.selectFunctions(names)
	if err != nil {
		return err
	}

	errGroup, ctx := errgroup.WithContext(ctx)
	for _, fc := range fns {
		errGroup.Go(func() error {
			return a.packager.Build(ctx, fc.DeploymentConfig(a.cfg.ObjectStorage.DeploymentBucket), a.cfg.Supervisor.Version)
		})
	}
	return errGroup.Wait()
}

// Deploy builds the artifacts and places each one in the deployment bucket.
func (a *App) Deploy(ctx context.Context, names ...string) error {
	if a.uploader == nil {
		return fmt.Errorf("deployment bucket is not configured")
	}

	fns, err := a.selectFunctions(names)
	if err != nil {
		return err
	}

	errGroup, ctx := errgroup.WithContext(ctx)
	for _, fc := range fns {
		errGroup.Go(func() error {
			cfg := fc.DeploymentConfig(a.cfg.ObjectStorage.DeploymentBucket)
			if err := a.packager.Build(ctx, cfg, a.cfg.Supervisor.Version); err != nil {
				return err
			}

			objectKey := cfg.FunctionName + ".zip"
			if err := a.uploader.UploadArtifact(ctx, objectKey, cfg.ArtifactPath); err != nil {
				return err
			}

			a.log.Info("artifact deployed",
				zap.String("function", cfg.FunctionName),
				zap.String("bucket", cfg.DeploymentBucket),
				zap.String("object_key", objectKey))
			return nil
		})
	}
	return errGroup.Wait()
}

func (a *App) selectFunctions(names []string) ([]FunctionConfig, error) {
	if len(a.cfg.Functions) == 0 {
		return nil, fmt.Errorf("no functions configured")
	}
	if len(names) == 0 {
		return a.cfg.Functions, nil
	}

	byName := make(map[string]FunctionConfig, len(a.cfg.Functions))
	for _, fc := range a.cfg.Functions {
		byName[fc.Name] = fc
	}

	selected := make([]FunctionConfig, 0, len(names))
	for _, name := range names {
		fc, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("function %q is not configured", name)
		}
		selected = append(selected, fc)
	}
	return selected, nil
}
