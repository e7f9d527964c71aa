package usecase

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/payment-entitlement/internal/domain/entity"
)

// DownloadSink is called once the file is resolved and returns where to write it
type DownloadSink func(meta entity.FileMeta) (io.Writer, error)

// EntitlementUseCase answers update-availability and download requests
type EntitlementUseCase interface {
	// CheckUpdates lists newer versions with per-version eligibility
	CheckUpdates(ctx context.Context, userID, productID uint64) (*entity.UpdateStatus, error)

	// DownloadUpdate re-validates every gate, reserves quota and streams the file into the sink.
	// Denials are results; StorageFailure and storage errors are returned as errors.
	DownloadUpdate(ctx context.Context, userID, versionID uint64, sink DownloadSink) (*entity.DownloadResult, error)
}
