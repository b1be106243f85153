package driving

import (
	"context"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// IngestService runs the extraction pipeline over files or directories.
type IngestService interface {
	// IngestPath processes a single file or every matching file in a
	// directory (sorted by name). Per-file failures are recorded in the
	// report; only storage-contract failures abort the batch.
	IngestPath(ctx context.Context, path string, opts domain.IngestOptions) (*domain.IngestReport, error)

	// IngestFile processes exactly one candidate file.
	IngestFile(ctx context.Context, path string, opts domain.IngestOptions) (*domain.IngestResult, error)
}
