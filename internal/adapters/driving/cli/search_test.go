package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_HasFieldFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("field")
	require.NotNil(t, flag, "field flag should exist")
	assert.Equal(t, "f", flag.Shorthand)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "search")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_FindsMatches(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)

	out, err := execute(t, "search", "resistor")
	require.NoError(t, err)
	assert.Contains(t, out, "r1")
	assert.NotContains(t, out, "c1")
}

func TestSearchCmd_FieldRestriction(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)
	defer func() { searchField = "" }()

	out, err := execute(t, "search", "--field", "value", "100n")
	require.NoError(t, err)
	assert.Contains(t, out, "c1")
	assert.NotContains(t, out, "r1")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)

	out, err := execute(t, "search", "inductor")
	require.NoError(t, err)
	assert.Contains(t, out, "No components found.")
}
