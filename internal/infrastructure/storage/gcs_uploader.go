package storage

import (
	"context"
	"io"

	gcs "cloud.google.com/go/storage"

	"github.com/accadex/accadex/pkg/helpers"
)

// GCSUploader writes objects to a single Cloud Storage bucket.
type GCSUploader struct {
	client *gcs.Client
	bucket string
}

func NewGCSUploader(client *gcs.Client, bucket string) *GCSUploader {
	return &GCSUploader{client: client, bucket: bucket}
}

func (u *GCSUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	return helpers.UploadObject(ctx, u.client, u.bucket, objectPath, contentType, r)
}
