package pkgsrv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	pkgdomain "github.com/10Narratives/faaspack/internal/domains/packaging"
	fileutils "github.com/10Narratives/faaspack/pkg/files"
)

//go:generate mockery --name HandlerFetcher --output ./mocks --outpkg mocks --with-expecter --filename handler_fetcher.go
type HandlerFetcher interface {
	pkgdomain.HandlerFetcher
}

//go:generate mockery --name ImagePreparer --output ./mocks --outpkg mocks --with-expecter --filename image_preparer.go
type ImagePreparer interface {
	pkgdomain.ImagePreparer
}

// Service assembles deployment packages. One Build call owns one working
// directory, so independent builds can run concurrently on the same Service.
type Service struct {
	fetcher HandlerFetcher
	images  ImagePreparer
	log     *zap.Logger
}

func NewService(log *zap.Logger, fetcher HandlerFetcher, images ImagePreparer) *Service {
	return &Service{
		fetcher: fetcher,
		images:  images,
		log:     log,
	}
}

// Build runs the assembly pipeline: clean the artifact path, stage the
// supervisor handler, prepare container images, add the init script and extra
// payload, zip everything, then gate on the transport's size ceiling. Steps
// run strictly in order and the first failure aborts the rest. The working
// directory is released on every exit path unless cfg.KeepWorkDir asks to
// retain it for debugging.
func (s *Service) Build(ctx context.Context, cfg *pkgdomain.DeploymentConfig, supervisorVersion string) (err error) {
	if cfg == nil || cfg.FunctionName == "" || cfg.ArtifactPath == "" {
		return pkgdomain.ErrInvalidConfig
	}
	if cfg.Environment == nil {
		cfg.Environment = make(map[string]string)
	}

	workDir, err := fileutils.CreateTempDir("faaspack")
	if err != nil {
		return fmt.Errorf("create working directory: %w", err)
	}

	log := s.log.With(
		zap.String("function", cfg.FunctionName),
		zap.String("workdir", workDir),
	)

	defer func() {
		if err != nil {
			// No partial artifact survives a failed build.
			if cleanErr := fileutils.DeleteFile(cfg.ArtifactPath); cleanErr != nil {
				log.Warn("cannot remove partial artifact", zap.Error(cleanErr))
			}
		}
		if cfg.KeepWorkDir {
			log.Info("working directory retained for debugging")
			return
		}
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			log.Warn("cannot remove working directory", zap.Error(rmErr))
		}
	}()

	if err := fileutils.DeleteFile(cfg.ArtifactPath); err != nil {
		return fmt.Errorf("clean artifact path: %w", err)
	}

	log.Info("fetching supervisor handler", zap.String("version", supervisorVersion))
	if err := s.fetcher.FetchHandler(ctx, supervisorVersion, workDir, cfg.FunctionName); err != nil {
		return fmt.Errorf("fetch supervisor handler: %w", err)
	}

	if err := s.prepareImages(ctx, cfg, workDir, log); err != nil {
		return err
	}

	if err := s.addInitScript(cfg, workDir, log); err != nil {
		return err
	}

	if err := s.addExtraPayload(cfg, workDir, log); err != nil {
		return err
	}

	if err := fileutils.ZipDir(workDir, cfg.ArtifactPath); err != nil {
		return fmt.Errorf("archive working directory: %w", err)
	}

	if err := ValidateDirSize(workDir, cfg.SizeLimit()); err != nil {
		return fmt.Errorf("check code size: %w", err)
	}

	log.Info("deployment package created", zap.String("artifact", cfg.ArtifactPath))
	return nil
}

// prepareImages runs the two image guards. They are independent: a build may
// pull a remote image for the bucket path and stage a local archive in the
// same run.
func (s *Service) prepareImages(ctx context.Context, cfg *pkgdomain.DeploymentConfig, workDir string, log *zap.Logger) error {
	if cfg.Image != "" && cfg.BucketMediated() {
		log.Info("downloading container image", zap.String("image", cfg.Image))
		if err := s.images.DownloadRemoteImage(ctx, cfg.Image, workDir); err != nil {
			return fmt.Errorf("download container image: %w", err)
		}
	}

	if cfg.ImageFile != "" {
		archivePath := resolvePath(cfg.ConfigPath, cfg.ImageFile)
		log.Info("preparing local image archive", zap.String("path", archivePath))
		if err := s.images.PrepareLocalImage(ctx, archivePath, workDir); err != nil {
			return fmt.Errorf("prepare local image archive: %w", err)
		}
	}

	return nil
}

func (s *Service) addInitScript(cfg *pkgdomain.DeploymentConfig, workDir string, log *zap.Logger) error {
	if cfg.InitScript == "" {
		return nil
	}

	scriptPath := resolvePath(cfg.ConfigPath, cfg.InitScript)
	log.Info("adding init script", zap.String("path", scriptPath))

	if err := fileutils.CopyFile(scriptPath, filepath.Join(workDir, pkgdomain.InitScriptName)); err != nil {
		return fmt.Errorf("copy init script: %w", err)
	}

	cfg.Environment[pkgdomain.EnvInitScriptPath] = pkgdomain.TaskRootPath + "/" + pkgdomain.InitScriptName
	return nil
}

func (s *Service) addExtraPayload(cfg *pkgdomain.DeploymentConfig, workDir string, log *zap.Logger) error {
	if cfg.ExtraPayload == "" {
		return nil
	}

	log.Info("adding extra payload", zap.String("path", cfg.ExtraPayload))

	if err := fileutils.CopyDir(cfg.ExtraPayload, workDir); err != nil {
		return fmt.Errorf("copy extra payload: %w", err)
	}

	cfg.Environment[pkgdomain.EnvExtraPayload] = pkgdomain.TaskRootPath
	return nil
}

func resolvePath(base, path string) string {
	if base == "" {
		return path
	}
	return filepath.Join(base, path)
}
