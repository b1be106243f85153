package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

func TestDeleteCmd_Force(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)
	defer func() { deleteForce = false }()

	out, err := execute(t, "delete", "--force", "r1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted r1")

	_, err = store.Get(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCmd_ConfirmationAccepted(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)

	rootCmd.SetIn(strings.NewReader("y\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "delete", "r1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted r1")
}

func TestDeleteCmd_ConfirmationDeclined(t *testing.T) {
	store := setupTestServices(t)
	seedComponents(t, store)

	rootCmd.SetIn(strings.NewReader("n\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "delete", "r1")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	_, err = store.Get(context.Background(), "r1")
	assert.NoError(t, err, "declined delete must keep the record")
}

func TestDeleteCmd_NotFound(t *testing.T) {
	setupTestServices(t)
	defer func() { deleteForce = false }()

	_, err := execute(t, "delete", "--force", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
