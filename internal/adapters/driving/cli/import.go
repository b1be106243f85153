package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import components from a JSON export",
	Long: `Merges records from a JSON file into the inventory. Both the JSON
backend's on-disk format and 'list --json' output are accepted. Records
whose ID or content fingerprint is already present are skipped, so
importing between the two backends is safe to repeat.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	added, skipped, err := inventoryService.Import(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d components (%d skipped)\n", added, skipped)
	return nil
}
