package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the inventory",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}

	stats, err := inventoryService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("computing stats: %w", err)
	}

	if statsJSON {
		return printJSON(cmd, stats)
	}

	cmd.Printf("Components:     %d\n", stats.TotalCount)
	cmd.Printf("Total quantity: %d\n", stats.TotalQuantity)
	if stats.MostCommonType != "" {
		cmd.Printf("Most common:    %s\n", stats.MostCommonType)
	}
	if len(stats.CountsByType) > 0 {
		cmd.Println("By type:")
		types := make([]string, 0, len(stats.CountsByType))
		for t := range stats.CountsByType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			cmd.Printf("  %-12s %d\n", t, stats.CountsByType[t])
		}
	}
	return nil
}
