package pkgdomain

import "context"

// HandlerFetcher retrieves the supervisor handler for a released shim version
// and stages it as <destDir>/<baseName>.py.
type HandlerFetcher interface {
	FetchHandler(ctx context.Context, version, destDir, baseName string) error
}

// ImagePreparer turns a container image into files inside the working
// directory. Both capabilities are independent: a single build may exercise
// either, both, or neither.
type ImagePreparer interface {
	DownloadRemoteImage(ctx context.Context, imageRef, destDir string) error
	PrepareLocalImage(ctx context.Context, archivePath, destDir string) error
}

// ArtifactUploader places a finished artifact into the deployment bucket.
type ArtifactUploader interface {
	UploadArtifact(ctx context.Context, objectKey, filePath string) error
}
