package pkgsrv_test

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgdomain "github.com/10Narratives/faaspack/internal/domains/packaging"
	pkgsrv "github.com/10Narratives/faaspack/internal/services/packaging"
	"github.com/10Narratives/faaspack/internal/services/packaging/mocks"
)

const testVersion = "1.4.2"

func testConfig(t *testing.T) *pkgdomain.DeploymentConfig {
	t.Helper()
	return &pkgdomain.DeploymentConfig{
		FunctionName:     "my-func",
		ArtifactPath:     filepath.Join(t.TempDir(), "my-func.zip"),
		MaxPayloadSize:   pkgdomain.DefaultMaxPayloadSize,
		MaxS3PayloadSize: pkgdomain.DefaultMaxS3PayloadSize,
		Environment:      map[string]string{},
	}
}

// expectHandler wires the fetcher mock to behave like the real one: it drops
// <baseName>.py into the working directory.
func expectHandler(ctx context.Context, fetcher *mocks.HandlerFetcher, baseName string, captured *string) {
	fetcher.EXPECT().
		FetchHandler(ctx, testVersion, mock.Anything, baseName).
		RunAndReturn(func(_ context.Context, _ string, destDir string, name string) error {
			if captured != nil {
				*captured = destDir
			}
			return os.WriteFile(filepath.Join(destDir, name+".py"), []byte("def lambda_handler(event, context): pass\n"), 0o644)
		}).
		Once()
}

func archiveNames(t *testing.T, path string) []string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestService_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("error: nil config", func(t *testing.T) {
		svc := pkgsrv.NewService(zap.NewNop(), mocks.NewHandlerFetcher(t), mocks.NewImagePreparer(t))

		err := svc.Build(ctx, nil, testVersion)
		require.ErrorIs(t, err, pkgdomain.ErrInvalidConfig)
	})

	t.Run("error: empty function name", func(t *testing.T) {
		svc := pkgsrv.NewService(zap.NewNop(), mocks.NewHandlerFetcher(t), mocks.NewImagePreparer(t))

		cfg := testConfig(t)
		cfg.FunctionName = ""

		err := svc.Build(ctx, cfg, testVersion)
		require.ErrorIs(t, err, pkgdomain.ErrInvalidConfig)
	})

	t.Run("error: fetch failure aborts pipeline and leaves no artifact", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		images := mocks.NewImagePreparer(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, images)

		cfg := testConfig(t)
		cfg.InitScript = "does-not-matter.sh" // later steps must never run

		var workDir string
		wantErr := errors.New("network down")
		fetcher.EXPECT().
			FetchHandler(ctx, testVersion, mock.Anything, "my-func").
			RunAndReturn(func(_ context.Context, _ string, destDir string, _ string) error {
				workDir = destDir
				return wantErr
			}).
			Once()

		err := svc.Build(ctx, cfg, testVersion)
		require.ErrorIs(t, err, wantErr)
		require.ErrorContains(t, err, "fetch supervisor handler")

		require.NoFileExists(t, cfg.ArtifactPath)
		require.NoDirExists(t, workDir)
	})

	t.Run("ok: minimal config packages exactly the shim", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		cfg := testConfig(t)

		var workDir string
		expectHandler(ctx, fetcher, "my-func", &workDir)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))

		require.Equal(t, []string{"my-func.py"}, archiveNames(t, cfg.ArtifactPath))
		require.Empty(t, cfg.Environment)
		require.NoDirExists(t, workDir)
	})

	t.Run("ok: init script adds one file and the env pointer", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		scriptDir := t.TempDir()
		script := filepath.Join(scriptDir, "boot.sh")
		require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho hi\n"), 0o755))

		cfg := testConfig(t)
		cfg.InitScript = script

		expectHandler(ctx, fetcher, "my-func", nil)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))

		require.Equal(t, []string{"init_script.sh", "my-func.py"}, archiveNames(t, cfg.ArtifactPath))
		require.Equal(t, "/var/task/init_script.sh", cfg.Environment[pkgdomain.EnvInitScriptPath])
	})

	t.Run("ok: init script resolves against config path", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		base := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(base, "boot.sh"), []byte("#!/bin/sh\n"), 0o755))

		cfg := testConfig(t)
		cfg.ConfigPath = base
		cfg.InitScript = "boot.sh"

		expectHandler(ctx, fetcher, "my-func", nil)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))
		require.Contains(t, archiveNames(t, cfg.ArtifactPath), "init_script.sh")
	})

	t.Run("ok: extra payload lands flattened at the artifact root", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		payload := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(payload, "a.txt"), []byte("a"), 0o644))
		require.NoError(t, os.MkdirAll(filepath.Join(payload, "sub"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(payload, "sub", "b.txt"), []byte("b"), 0o644))

		cfg := testConfig(t)
		cfg.ExtraPayload = payload

		expectHandler(ctx, fetcher, "my-func", nil)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))

		require.Equal(t, []string{"a.txt", "my-func.py", "sub/b.txt"}, archiveNames(t, cfg.ArtifactPath))
		require.Equal(t, "/var/task", cfg.Environment[pkgdomain.EnvExtraPayload])
	})

	t.Run("ok: both image guards fire independently", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		images := mocks.NewImagePreparer(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, images)

		base := t.TempDir()
		cfg := testConfig(t)
		cfg.Image = "ubuntu:24.04"
		cfg.DeploymentBucket = "deploys"
		cfg.ConfigPath = base
		cfg.ImageFile = "image.tar"

		expectHandler(ctx, fetcher, "my-func", nil)
		images.EXPECT().DownloadRemoteImage(ctx, "ubuntu:24.04", mock.Anything).Return(nil).Once()
		images.EXPECT().PrepareLocalImage(ctx, filepath.Join(base, "image.tar"), mock.Anything).Return(nil).Once()

		require.NoError(t, svc.Build(ctx, cfg, testVersion))
	})

	t.Run("ok: remote image skipped without a deployment bucket", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		images := mocks.NewImagePreparer(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, images)

		cfg := testConfig(t)
		cfg.Image = "ubuntu:24.04"

		expectHandler(ctx, fetcher, "my-func", nil)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))
	})

	t.Run("error: direct-upload ceiling governs without a bucket", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		cfg := testConfig(t)
		cfg.MaxPayloadSize = 1
		cfg.MaxS3PayloadSize = 1 << 20

		expectHandler(ctx, fetcher, "my-func", nil)

		err := svc.Build(ctx, cfg, testVersion)

		var sizeErr *pkgdomain.SizeExceededError
		require.ErrorAs(t, err, &sizeErr)
		require.Equal(t, int64(1), sizeErr.Limit)
		require.Greater(t, sizeErr.Actual, sizeErr.Limit)
		require.NoFileExists(t, cfg.ArtifactPath)
	})

	t.Run("ok: bucket ceiling admits what direct upload would reject", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		cfg := testConfig(t)
		cfg.DeploymentBucket = "deploys"
		cfg.MaxPayloadSize = 1
		cfg.MaxS3PayloadSize = 1 << 20

		expectHandler(ctx, fetcher, "my-func", nil)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))
		require.FileExists(t, cfg.ArtifactPath)
	})

	t.Run("ok: rebuild overwrites a stale artifact", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(cfg.ArtifactPath, []byte("stale bytes"), 0o644))

		expectHandler(ctx, fetcher, "my-func", nil)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))
		require.Equal(t, []string{"my-func.py"}, archiveNames(t, cfg.ArtifactPath))
	})

	t.Run("ok: keep workdir retains the directory for debugging", func(t *testing.T) {
		fetcher := mocks.NewHandlerFetcher(t)
		svc := pkgsrv.NewService(zap.NewNop(), fetcher, mocks.NewImagePreparer(t))

		cfg := testConfig(t)
		cfg.KeepWorkDir = true

		var workDir string
		expectHandler(ctx, fetcher, "my-func", &workDir)

		require.NoError(t, svc.Build(ctx, cfg, testVersion))

		require.DirExists(t, workDir)
		t.Cleanup(func() { os.RemoveAll(workDir) })
	})
}
