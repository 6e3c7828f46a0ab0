package supervisorrepo

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	pkgdomain "github.com/10Narratives/faaspack/internal/domains/packaging"
	fileutils "github.com/10Narratives/faaspack/pkg/files"
)

const (
	githubUser    = "grycap"
	githubProject = "faas-supervisor"

	// handlerMarker identifies the single archive entry worth extracting. The
	// entry sits under a versioned top-level folder, so only the suffix is
	// stable across releases.
	handlerMarker = "function_handler.py"

	defaultBaseURL = "https://github.com"
)

// Repository fetches supervisor release archives from GitHub and stages the
// function handler out of them.
type Repository struct {
	httpClient *http.Client
	baseURL    string
}

func NewRepository(httpClient *http.Client, baseURL string) *Repository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Repository{httpClient: httpClient, baseURL: baseURL}
}

// FetchHandler downloads the source archive of the given supervisor release,
// extracts the one entry ending in function_handler.py and places it at
// <destDir>/<baseName>.py. Nothing is written to destDir when no entry
// matches.
func (r *Repository) FetchHandler(ctx context.Context, version, destDir, baseName string) error {
	archiveURL := fmt.Sprintf("%s/%s/%s/archive/%s.zip", r.baseURL, githubUser, githubProject, version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return fmt.Errorf("build release request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download supervisor release %q: %w", version, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download supervisor release %q: unexpected status %s", version, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("download supervisor release %q: %w", version, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return fmt.Errorf("%w: %v", pkgdomain.ErrCorruptArchive, err)
	}

	for _, entry := range zr.File {
		if strings.HasSuffix(entry.Name, handlerMarker) {
			return r.stageHandler(entry, destDir, baseName)
		}
	}

	return fmt.Errorf("%w: release %q", pkgdomain.ErrHandlerNotFound, version)
}

// stageHandler extracts a single archive entry to a scratch file and copies it
// under its final name. Only the matched entry ever touches the disk.
func (r *Repository) stageHandler(entry *zip.File, destDir, baseName string) error {
	in, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", pkgdomain.ErrCorruptArchive, err)
	}
	defer in.Close()

	scratch, err := os.CreateTemp("", "faaspack-handler-*")
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}
	defer os.Remove(scratch.Name())

	if _, err := io.Copy(scratch, in); err != nil {
		scratch.Close()
		return fmt.Errorf("%w: %v", pkgdomain.ErrCorruptArchive, err)
	}
	if err := scratch.Close(); err != nil {
		return err
	}

	dest := filepath.Join(destDir, baseName+pkgdomain.HandlerExtension)
	if err := fileutils.CopyFile(scratch.Name(), dest); err != nil {
		return fmt.Errorf("stage handler at %q: %w", dest, err)
	}
	return nil
}
