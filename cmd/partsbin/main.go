// Command partsbin is a photo-driven inventory manager for electronic
// components.
package main

import (
	"os"

	"github.com/benchtop-labs/partsbin-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
