package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tabmate/outings-tracker/internal/common"
)

// S3Storage implements Storage against any S3-compatible endpoint.
type S3Storage struct {
	client  *s3.Client
	presign *s3.PresignClient
	logger  *slog.Logger

	mu      sync.Mutex
	buckets map[string]struct{} // buckets already verified to exist
}

// NewS3Storage builds a client from StorageConfig. A non-empty Endpoint
// switches to path-style addressing against that URL (MinIO, R2, …).
func NewS3Storage(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (*S3Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &S3Storage{
		client:  client,
		presign: s3.NewPresignClient(client),
		logger:  logger,
		buckets: make(map[string]struct{}),
	}, nil
}

// ensureBucket creates the bucket on first use; subsequent calls for the
// same bucket are a map lookup.
func (s *S3Storage) ensureBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	_, known := s.buckets[bucket]
	s.mu.Unlock()
	if known {
		return nil
	}

	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
		var notFound *types.NotFound
		if !errors.As(err, &notFound) {
			return fmt.Errorf("head bucket %s: %w", bucket, err)
		}
		s.logger.Info("storage.bucket.create", "bucket", bucket)
		if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
			var owned *types.BucketAlreadyOwnedByYou
			var exists *types.BucketAlreadyExists
			// Concurrent creators can race; either way the bucket is there.
			if !errors.As(err, &owned) && !errors.As(err, &exists) {
				return fmt.Errorf("create bucket %s: %w", bucket, err)
			}
		}
	}

	s.mu.Lock()
	s.buckets[bucket] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *S3Storage) UploadImageBytes(ctx context.Context, bucket, objectName string, data []byte, contentType string) error {
	if err := s.ensureBucket(ctx, bucket); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %s/%s: %w", bucket, objectName, err)
	}
	s.logger.Info("storage.object.put", "bucket", bucket, "key", objectName, "bytes", len(data))
	return nil
}

func (s *S3Storage) PresignedURL(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectName),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", bucket, objectName, err)
	}
	return req.URL, nil
}
