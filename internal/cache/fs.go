package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps one file per key under a directory.
type FSStore struct {
	dir string
	ext string
}

// NewFSStore creates the directory if needed. ext (e.g. ".json", ".bin")
// is appended to every key to form the file name.
func NewFSStore(dir, ext string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &FSStore{dir: dir, ext: ext}, nil
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.dir, key+s.ext)
}

func (s *FSStore) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache entry %s: %w", key, err)
	}
	return b, true, nil
}

func (s *FSStore) Put(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("write cache entry %s: %w", key, err)
	}
	return nil
}
