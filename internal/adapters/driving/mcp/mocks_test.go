package mcp

import (
	"context"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// mockInventoryService is a mock implementation of driving.InventoryService.
type mockInventoryService struct {
	components []domain.Component
	component  *domain.Component
	stats      *domain.Stats
	hasMore    bool
	err        error
}

func (m *mockInventoryService) Get(_ context.Context, _ string) (*domain.Component, error) {
	return m.component, m.err
}

func (m *mockInventoryService) List(_ context.Context, _, _ int) ([]domain.Component, bool, error) {
	return m.components, m.hasMore, m.err
}

func (m *mockInventoryService) Search(_ context.Context, _, _ string) ([]domain.Component, error) {
	return m.components, m.err
}

func (m *mockInventoryService) Update(_ context.Context, _ string, _ map[string]string) (*domain.Component, error) {
	return m.component, m.err
}

func (m *mockInventoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockInventoryService) Stats(_ context.Context) (*domain.Stats, error) {
	return m.stats, m.err
}

func (m *mockInventoryService) Import(_ context.Context, _ string) (int, int, error) {
	return 0, 0, m.err
}
