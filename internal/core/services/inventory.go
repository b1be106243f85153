package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driving"
	"github.com/benchtop-labs/partsbin-cli/internal/logger"
)

// Ensure InventoryService implements the interface.
var _ driving.InventoryService = (*InventoryService)(nil)

// InventoryService provides the query surface over the component store.
// Both storage backends sit behind the same port, so the service never
// knows which one is in use.
type InventoryService struct {
	store driven.InventoryStore
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(store driven.InventoryStore) *InventoryService {
	return &InventoryService{store: store}
}

// Get retrieves a component by id.
func (s *InventoryService) Get(ctx context.Context, id string) (*domain.Component, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: component ID is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// List returns a page of components in insertion order.
func (s *InventoryService) List(ctx context.Context, limit, offset int) ([]domain.Component, bool, error) {
	return s.store.List(ctx, limit, offset)
}

// Search finds components by case-insensitive substring match,
// optionally restricted to a single field.
func (s *InventoryService) Search(ctx context.Context, query, field string) ([]domain.Component, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidInput)
	}
	results, err := s.store.Search(ctx, query, field)
	if err != nil {
		return nil, err
	}
	logger.Debug("search %q (field %q) matched %d components", query, field, len(results))
	return results, nil
}

// Update applies field replacements to a component.
func (s *InventoryService) Update(ctx context.Context, id string, updates map[string]string) (*domain.Component, error) {
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no updates given", domain.ErrInvalidInput)
	}
	return s.store.Update(ctx, id, updates)
}

// Delete removes a component permanently.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Stats summarizes the inventory.
func (s *InventoryService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.store.Stats(ctx)
}

// Import bulk-loads records from a JSON export file.
func (s *InventoryService) Import(ctx context.Context, path string) (added, skipped int, err error) {
	added, skipped, err = s.store.ImportFrom(ctx, path)
	if err != nil {
		return added, skipped, err
	}
	logger.Info("imported %d components from %s (%d skipped)", added, path, skipped)
	return added, skipped, nil
}
