package driven

import (
	"context"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// InventoryStore persists component records.
//
// Two implementations exist: a relational SQLite store and a single-file
// JSON document store. Application logic depends only on this interface,
// and both backends must give identical answers to every read operation
// given the same sequence of writes.
type InventoryStore interface {
	// HasFile reports whether any record's source file equals path.
	HasFile(ctx context.Context, path string) (bool, error)

	// HasHash reports whether any record's content hash equals hash.
	HasHash(ctx context.Context, hash string) (bool, error)

	// Add persists a new component. It fails with domain.ErrDuplicate if
	// the id or content hash is already present. CreatedAt is stamped at
	// insertion when zero.
	Add(ctx context.Context, component *domain.Component) error

	// Get retrieves a component by id, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Component, error)

	// List returns a page of components in insertion order. hasMore is
	// true iff at least one more record exists beyond the returned page.
	// A limit <= 0 means no limit.
	List(ctx context.Context, limit, offset int) ([]domain.Component, bool, error)

	// Search returns components matching a case-insensitive substring
	// query. If field is non-empty, only that field is considered,
	// including metadata keys.
	Search(ctx context.Context, query, field string) ([]domain.Component, error)

	// Update applies field replacements to a component and returns the
	// updated record. Unknown field names go into metadata. ID, content
	// hash, and creation time are never rewritten.
	Update(ctx context.Context, id string, updates map[string]string) (*domain.Component, error)

	// Delete removes a component, or domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Stats summarizes the inventory.
	Stats(ctx context.Context) (*domain.Stats, error)

	// ImportFrom bulk-loads records from a JSON file of the same logical
	// schema, applying the same duplicate rules as Add. Returns the
	// number of records added and the number skipped as duplicates.
	ImportFrom(ctx context.Context, path string) (added, skipped int, err error)

	// Close releases backend resources.
	Close() error
}
