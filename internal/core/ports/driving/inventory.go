package driving

import (
	"context"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// InventoryService provides the read/write query surface over the
// component store. It is consumed by the CLI commands and the MCP server.
type InventoryService interface {
	// Get retrieves a component by id.
	Get(ctx context.Context, id string) (*domain.Component, error)

	// List returns a page of components in insertion order.
	List(ctx context.Context, limit, offset int) ([]domain.Component, bool, error)

	// Search finds components by case-insensitive substring match,
	// optionally restricted to a single field.
	Search(ctx context.Context, query, field string) ([]domain.Component, error)

	// Update applies field replacements to a component.
	Update(ctx context.Context, id string, updates map[string]string) (*domain.Component, error)

	// Delete removes a component permanently.
	Delete(ctx context.Context, id string) error

	// Stats summarizes the inventory.
	Stats(ctx context.Context) (*domain.Stats, error)

	// Import bulk-loads records from a JSON export file.
	Import(ctx context.Context, path string) (added, skipped int, err error)
}
