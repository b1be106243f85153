// Package mcp provides an MCP (Model Context Protocol) server adapter
// for partsbin. It lets AI assistants query and maintain the component
// inventory through tools and resources.
package mcp

import "errors"

// ErrMissingInventoryService is returned when the inventory service is not provided.
var ErrMissingInventoryService = errors.New("mcp: inventory service is required")
