package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FSStorage keeps objects on the local filesystem under root/bucket/key.
// The batch CLI uses it when no object store is configured.
type FSStorage struct {
	root   string
	logger *slog.Logger
}

func NewFSStorage(root string, logger *slog.Logger) (*FSStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &FSStorage{root: root, logger: logger}, nil
}

func (s *FSStorage) UploadImageBytes(ctx context.Context, bucket, objectName string, data []byte, contentType string) error {
	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create bucket dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, objectName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write object %s: %w", path, err)
	}
	s.logger.Debug("storage.fs.put", "path", path, "bytes", len(data))
	return nil
}

// PresignedURL returns a file URL; local objects need no signing.
func (s *FSStorage) PresignedURL(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error) {
	abs, err := filepath.Abs(filepath.Join(s.root, bucket, objectName))
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}
