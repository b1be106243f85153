// Package cli provides the cobra command tree for the partsbin CLI.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	configfile "github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/config/file"
	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/storage/jsondoc"
	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driven/storage/sqlite"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driven"
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driving"
	"github.com/benchtop-labs/partsbin-cli/internal/core/services"
	"github.com/benchtop-labs/partsbin-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose     bool
	backendFlag string
	dbPathFlag  string
)

// Services wired by initServices. Tests replace these directly.
var (
	configStore      driven.ConfigStore
	inventoryStore   driven.InventoryStore
	inventoryService driving.InventoryService
)

var rootCmd = &cobra.Command{
	Use:   "partsbin",
	Short: "Photo-driven inventory for electronic components",
	Long: `partsbin keeps an inventory of electronic components built from
photos. Point it at a photo (or a folder of them), and it runs OCR,
extracts component fields, checks for duplicates, and files the result.

The inventory lives either in a SQLite database or a single JSON file;
both backends behave identically and can be chosen per project.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite or json")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "path to the inventory database or JSON file")
}

// Execute runs the root command.
func Execute() error {
	defer closeStore()
	return rootCmd.Execute()
}

// initServices wires the storage and query services before any command
// runs. Tests preinstall their own services, which short-circuits the
// wiring.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if inventoryService != nil {
		return nil
	}

	// API keys may live in a .env next to the inventory.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env")
	}

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	res := configfile.ResolveStorage(cfg, backendFlag, dbPathFlag)
	store, err := openStore(res)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", res.Backend, err)
	}
	logger.Debug("using %s backend", res.Backend)

	inventoryStore = store
	inventoryService = services.NewInventoryService(store)
	return nil
}

// openStore opens the resolved storage backend.
func openStore(res configfile.StorageResolution) (driven.InventoryStore, error) {
	switch res.Backend {
	case configfile.BackendJSON:
		return jsondoc.NewStore(res.Path)
	case configfile.BackendSQLite, "":
		return sqlite.NewStore(res.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want sqlite or json)", res.Backend)
	}
}

func closeStore() {
	if inventoryStore != nil {
		inventoryStore.Close() //nolint:errcheck
	}
}
