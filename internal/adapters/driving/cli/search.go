package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchField string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the inventory",
	Long: `Searches components by case-insensitive substring match across type,
value, description, and metadata. Use --field to restrict the match to
one field, including metadata keys like tolerance or bin.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchField, "field", "f", "", "restrict the match to one field")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	results, err := inventoryService.Search(cmd.Context(), args[0], searchField)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return printJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No components found.")
		return nil
	}

	for i := range results {
		printComponentLine(cmd, &results[i])
	}
	return nil
}
