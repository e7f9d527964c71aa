package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-entitlement/internal/domain/error"
)

// LocalFileStore serves version files from a directory on disk.
// Lookups go through os.Root, so a stored path can never escape the directory.
type LocalFileStore struct {
	root *os.Root
}

// NewLocalFileStore opens dir as the storage root; the directory must exist
func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open storage root: %w", err)
	}
	return &LocalFileStore{root: root}, nil
}

// Stat returns the file's base name and size
func (s *LocalFileStore) Stat(ctx context.Context, name string) (entity.FileMeta, error) {
	if err := ctx.Err(); err != nil {
		return entity.FileMeta{}, err
	}

	info, err := s.root.Stat(relative(name))
	if err != nil {
		return entity.FileMeta{}, fmt.Errorf("%w: %v", errs.ErrStorageFailure, err)
	}
	if info.IsDir() {
		return entity.FileMeta{}, fmt.Errorf("%w: %s is a directory", errs.ErrStorageFailure, name)
	}
	return entity.FileMeta{Name: path.Base(filepath.ToSlash(name)), Size: info.Size()}, nil
}

// Open returns the file for reading; the caller closes it
func (s *LocalFileStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := s.root.Open(relative(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageFailure, err)
	}
	return file, nil
}

// Close releases the root directory handle
func (s *LocalFileStore) Close() error {
	return s.root.Close()
}

// relative strips a leading slash so stored absolute-looking paths resolve under the root
func relative(name string) string {
	return filepath.FromSlash(strings.TrimLeft(filepath.ToSlash(name), "/"))
}
