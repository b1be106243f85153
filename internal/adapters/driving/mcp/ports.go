package mcp

import (
	"github.com/benchtop-labs/partsbin-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Inventory provides the component query surface.
	Inventory driving.InventoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Inventory == nil {
		return ErrMissingInventoryService
	}
	return nil
}
