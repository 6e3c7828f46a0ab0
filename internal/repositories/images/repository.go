package imagerepo

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/containerd/errdefs"
	"github.com/moby/moby/client"

	fileutils "github.com/10Narratives/faaspack/pkg/files"
)

// imageTarName is the fixed name the prepared container filesystem gets
// inside the working directory. The supervisor looks it up under /var/task.
const imageTarName = "image.tar"

// Repository prepares container images as files in a build's working
// directory, either by pulling and exporting a remote reference or by staging
// a local image archive.
type Repository struct {
	dockerClient *client.Client
}

func NewRepository() (*Repository, error) {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	return &Repository{dockerClient: dockerClient}, nil
}

// DownloadRemoteImage pulls imageRef when the daemon does not have it yet and
// exports it as a tar inside destDir.
func (r *Repository) DownloadRemoteImage(ctx context.Context, imageRef, destDir string) error {
	_, err := r.dockerClient.ImageInspect(ctx, imageRef)
	if err != nil {
		if !errdefs.IsNotFound(err) {
			return fmt.Errorf("failed to inspect image %s: %w", imageRef, err)
		}

		pullResp, err := r.dockerClient.ImagePull(ctx, imageRef, client.ImagePullOptions{})
		if err != nil {
			return fmt.Errorf("failed to pull image %s: %w", imageRef, err)
		}
		io.Copy(io.Discard, pullResp)
		pullResp.Close()
	}

	export, err := r.dockerClient.ImageSave(ctx, []string{imageRef})
	if err != nil {
		return fmt.Errorf("failed to export image %s: %w", imageRef, err)
	}
	defer export.Close()

	out, err := os.Create(filepath.Join(destDir, imageTarName))
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, export); err != nil {
		out.Close()
		return fmt.Errorf("failed to write image tar: %w", err)
	}
	return out.Close()
}

// PrepareLocalImage stages a local image archive inside destDir under the
// fixed tar name.
func (r *Repository) PrepareLocalImage(ctx context.Context, archivePath, destDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := fileutils.CopyFile(archivePath, filepath.Join(destDir, imageTarName)); err != nil {
		return fmt.Errorf("failed to stage image archive %q: %w", archivePath, err)
	}
	return nil
}
