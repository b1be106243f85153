package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

func testComponents() []domain.Component {
	return []domain.Component{
		{
			ID:          "r1",
			Type:        "resistor",
			Value:       "10kΩ",
			Quantity:    "25 pcs",
			Description: "carbon film",
			Metadata:    map[string]string{"tolerance": "±5%"},
			SourceFile:  "photos/r1.jpg",
			CreatedAt:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{ID: "c1", Type: "capacitor", Value: "100nF"},
	}
}

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching components", func(t *testing.T) {
		mock := &mockInventoryService{components: testComponents()}
		server, err := NewServer(&Ports{Inventory: mock})
		require.NoError(t, err)

		_, output, err := server.handleSearch(ctx, nil, SearchInput{Query: "resistor"})
		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "r1", output.Components[0].ID)
		assert.Equal(t, "10kΩ", output.Components[0].Value)
		assert.Equal(t, "±5%", output.Components[0].Metadata["tolerance"])
		assert.Equal(t, "2026-08-01T12:00:00Z", output.Components[0].CreatedAt)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mock := &mockInventoryService{err: errors.New("store broken")}
		server, err := NewServer(&Ports{Inventory: mock})
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store broken")
	})
}

func TestServer_handleGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the component", func(t *testing.T) {
		all := testComponents()
		mock := &mockInventoryService{component: &all[0]}
		server, err := NewServer(&Ports{Inventory: mock})
		require.NoError(t, err)

		_, output, err := server.handleGet(ctx, nil, GetInput{ID: "r1"})
		require.NoError(t, err)
		assert.Equal(t, "r1", output.Component.ID)
		assert.Equal(t, "photos/r1.jpg", output.Component.SourceFile)
	})

	t.Run("propagates not found", func(t *testing.T) {
		mock := &mockInventoryService{err: domain.ErrNotFound}
		server, err := NewServer(&Ports{Inventory: mock})
		require.NoError(t, err)

		_, _, err = server.handleGet(ctx, nil, GetInput{ID: "missing"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleList(t *testing.T) {
	ctx := context.Background()

	mock := &mockInventoryService{components: testComponents(), hasMore: true}
	server, err := NewServer(&Ports{Inventory: mock})
	require.NoError(t, err)

	_, output, err := server.handleList(ctx, nil, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	assert.True(t, output.HasMore)
	assert.Equal(t, "c1", output.Components[1].ID)
	assert.Empty(t, output.Components[1].CreatedAt, "zero time must serialise as absent")
}

func TestServer_handleStats(t *testing.T) {
	ctx := context.Background()

	mock := &mockInventoryService{stats: &domain.Stats{
		TotalCount:     3,
		TotalQuantity:  40,
		CountsByType:   map[string]int{"resistor": 2, "capacitor": 1},
		MostCommonType: "resistor",
	}}
	server, err := NewServer(&Ports{Inventory: mock})
	require.NoError(t, err)

	_, output, err := server.handleStats(ctx, nil, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, 3, output.TotalCount)
	assert.Equal(t, 40, output.TotalQuantity)
	assert.Equal(t, "resistor", output.MostCommonType)
}
