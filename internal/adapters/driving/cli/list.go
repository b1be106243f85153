package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

var (
	listLimit  int
	listOffset int
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory components",
	Long: `Lists components in the order they were added. Use --limit and
--offset to page through large inventories.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of components (0 = all)")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of components to skip")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	components, hasMore, err := inventoryService.List(cmd.Context(), listLimit, listOffset)
	if err != nil {
		return fmt.Errorf("listing components: %w", err)
	}

	if listJSON {
		return printJSON(cmd, components)
	}

	if len(components) == 0 {
		cmd.Println("Inventory is empty.")
		return nil
	}

	for i := range components {
		printComponentLine(cmd, &components[i])
	}
	if hasMore {
		cmd.Printf("\nMore components available; use --offset %d\n", listOffset+len(components))
	}
	return nil
}

func printComponentLine(cmd *cobra.Command, c *domain.Component) {
	qty := c.Quantity
	if qty == "" {
		qty = "-"
	}
	cmd.Printf("  %-38s %-12s %-10s %s\n", c.ID, c.Type, qty, c.Value)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
