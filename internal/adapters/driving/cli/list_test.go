package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

func TestListCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory is empty.")
}

func TestListCmd_ShowsComponents(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "r1")
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "resistor")
}

func TestListCmd_JSON(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)
	defer func() { listJSON = false }()

	out, err := execute(t, "list", "--json")
	require.NoError(t, err)

	var components []domain.Component
	require.NoError(t, json.Unmarshal([]byte(out), &components))
	require.Len(t, components, 2)
	assert.Equal(t, "r1", components[0].ID)
}

func TestListCmd_Paging(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)
	defer func() { listLimit, listOffset = 0, 0 }()

	out, err := execute(t, "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "r1")
	assert.NotContains(t, out, "c1")
	assert.Contains(t, out, "--offset 1")
}

func TestShowCmd_PrintsDetail(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)

	out, err := execute(t, "show", "r1")
	require.NoError(t, err)
	assert.Contains(t, out, "ID:          r1")
	assert.Contains(t, out, "10kΩ")
	assert.Contains(t, out, "carbon film")
}

func TestShowCmd_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "show", "missing")
	assert.Error(t, err)
}
