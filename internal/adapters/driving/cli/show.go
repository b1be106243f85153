package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one component in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	c, err := inventoryService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching component: %w", err)
	}

	if showJSON {
		return printJSON(cmd, c)
	}

	cmd.Printf("ID:          %s\n", c.ID)
	cmd.Printf("Type:        %s\n", c.Type)
	cmd.Printf("Value:       %s\n", c.Value)
	cmd.Printf("Quantity:    %s\n", c.Quantity)
	cmd.Printf("Description: %s\n", c.Description)
	if c.SourceFile != "" {
		cmd.Printf("Source:      %s\n", c.SourceFile)
	}
	if c.Service != "" {
		cmd.Printf("OCR service: %s\n", c.Service)
	}
	if !c.CreatedAt.IsZero() {
		cmd.Printf("Added:       %s\n", c.CreatedAt.Format("2006-01-02 15:04"))
	}
	if len(c.Metadata) > 0 {
		cmd.Println("Metadata:")
		keys := make([]string, 0, len(c.Metadata))
		for k := range c.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("  %s: %s\n", k, c.Metadata[k])
		}
	}
	return nil
}
