package storage

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// FileStore resolves version file paths to byte streams
type FileStore interface {
	// Stat returns the file's name and size, or ErrStorageFailure when it is missing
	Stat(ctx context.Context, path string) (entity.FileMeta, error)

	// Open returns a reader positioned at the start of the file
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
