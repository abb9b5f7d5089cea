package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"rheumassoc/api/internal/config"
)

// UploadStore persists uploaded files under generated names and reports the
// URL they are served from.
type UploadStore interface {
	Save(ctx context.Context, name string, data []byte) (url string, err error)
}

func New(cfg config.StorageConfig) (UploadStore, error) {
	switch cfg.Driver {
	case "", "disk":
		return NewDiskStore(cfg.UploadDir)
	case "s3":
		return NewObjectStore(cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// DiskStore writes files into a single flat directory served at /uploads.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(_ context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}
