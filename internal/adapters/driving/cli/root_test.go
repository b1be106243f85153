package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	configfile "github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/config/file"
	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/storage/jsondoc"
	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
	"github.com/benchtop-labs/partsbin-cli/internal/core/services"
)

// setupTestServices installs an isolated JSON-backed inventory and a
// throwaway config store, and restores the previous wiring on cleanup.
func setupTestServices(t *testing.T) driven.InventoryStore {
	t.Helper()

	store, err := jsondoc.NewStore(filepath.Join(t.TempDir(), "components.json"))
	require.NoError(t, err)

	cfg, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	prevStore, prevService, prevConfig := inventoryStore, inventoryService, configStore
	inventoryStore = store
	inventoryService = services.NewInventoryService(store)
	configStore = cfg

	t.Cleanup(func() {
		inventoryStore, inventoryService, configStore = prevStore, prevService, prevConfig
	})
	return store
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func seedComponents(t *testing.T, store driven.InventoryStore) {
	t.Helper()
	for _, c := range []*domain.Component{
		{ID: "r1", Type: "resistor", Value: "10kΩ", Quantity: "25 pcs", Description: "carbon film", ContentHash: "h1"},
		{ID: "c1", Type: "capacitor", Value: "100nF", Quantity: "10 pcs", Description: "ceramic", ContentHash: "h2"},
	} {
		require.NoError(t, store.Add(context.Background(), c))
	}
}

// fakeOCRService is a canned OCR provider for add-command tests.
type fakeOCRService struct {
	text string
}

func (f *fakeOCRService) Name() string { return "fake" }

func (f *fakeOCRService) ExtractText(context.Context, string) (string, error) {
	return f.text, nil
}
