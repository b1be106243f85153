package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a component permanently",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "delete without confirmation")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if inventoryService == nil {
		return errors.New("inventory service not configured")
	}
	id := args[0]

	if !deleteForce {
		cmd.Printf("Delete component %s? [y/N] ", id)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := inventoryService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("deleting component: %w", err)
	}

	cmd.Printf("Deleted %s\n", id)
	return nil
}
