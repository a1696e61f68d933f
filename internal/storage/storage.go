// Package storage persists original receipt images in an S3-compatible
// object store (MinIO in development).
package storage

import (
	"context"
	"time"
)

// Storage is the narrow contract the pipeline and display code consume.
type Storage interface {
	// UploadImageBytes writes an object, creating the bucket if absent.
	// Same key ⇒ overwrite; uploads are idempotent for content-addressed
	// object names.
	UploadImageBytes(ctx context.Context, bucket, objectName string, data []byte, contentType string) error
	// PresignedURL returns a time-limited GET URL for an object.
	PresignedURL(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error)
}
