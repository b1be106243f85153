package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [id] [field=value...]",
	Short: "Update fields of a component",
	Long: `Replaces field values on a component. Known fields (type, value,
quantity, description) update the record directly; anything else lands
in metadata. An empty value removes a metadata key.

The id, content hash, and creation time cannot be changed.

Example:
  partsbin update 3f1a quantity="30 pcs" bin=A3`,
	Args: cobra.MinimumNArgs(2),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	updates := make(map[string]string, len(args)-1)
	for _, pair := range args[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return fmt.Errorf("invalid update %q: want field=value", pair)
		}
		updates[strings.TrimSpace(key)] = value
	}

	c, err := inventoryService.Update(cmd.Context(), args[0], updates)
	if err != nil {
		return fmt.Errorf("updating component: %w", err)
	}

	cmd.Printf("Updated %s\n", c.ID)
	return nil
}
