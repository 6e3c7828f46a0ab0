package artifactrepo

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Repository stores finished artifacts in the deployment bucket. It is the
// first hop of the bucket-mediated deployment path; the provider picks the
// object up from there.
type Repository struct {
	objectStorage *minio.Client
	bucketName    string
}

func NewRepository(objectStorage *minio.Client, bucketName string) (*Repository, error) {
	exists, err := objectStorage.BucketExists(context.Background(), bucketName)
	if err != nil {
		return nil, fmt.Errorf("cannot check if deployment bucket exists: %w", err)
	}

	if !exists {
		err := objectStorage.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("cannot create deployment bucket: %w", err)
		}
	}

	return &Repository{
		objectStorage: objectStorage,
		bucketName:    bucketName,
	}, nil
}

func (r *Repository) UploadArtifact(ctx context.Context, objectKey, filePath string) error {
	_, err := r.objectStorage.FPutObject(ctx, r.bucketName, objectKey, filePath, minio.PutObjectOptions{
		ContentType: "application/zip",
	})
	if err != nil {
		return fmt.Errorf("failed to upload artifact %q: %w", objectKey, err)
	}
	return nil
}
