package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go-registration-portal/config"

	"github.com/google/uuid"
)

// DiskStorage persists uploaded files under a single directory that the HTTP
// layer also serves statically. Filenames are generated, so concurrent
// uploads never contend on the same path. No size or content-type limits are
// enforced here.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(cfg config.UploadConfig) (*DiskStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStorage{dir: cfg.Dir}, nil
}

// Dir returns the directory files are written to.
func (s *DiskStorage) Dir() string {
	return s.dir
}

// Save writes the uploaded content to disk under a generated filename that
// keeps the original extension, and returns the relative path clients use to
// fetch the file back.
func (s *DiskStorage) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	fullPath := filepath.Join(s.dir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return filepath.ToSlash(fullPath), nil
}
