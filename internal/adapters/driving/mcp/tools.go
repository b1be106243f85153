package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/benchtop-labs/partsbin-cli/internal/core/domain"
)

// ComponentOutput is the wire representation of a component.
type ComponentOutput struct {
	ID          string            `json:"id"`
	Type        string            `json:"type,omitempty"`
	Value       string            `json:"value,omitempty"`
	Quantity    string            `json:"quantity,omitempty"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	SourceFile  string            `json:"source_file,omitempty"`
	CreatedAt   string            `json:"created_at,omitempty"`
}

func toComponentOutput(c *domain.Component) ComponentOutput {
	out := ComponentOutput{
		ID:          c.ID,
		Type:        c.Type,
		Value:       c.Value,
		Quantity:    c.Quantity,
		Description: c.Description,
		Metadata:    c.Metadata,
		SourceFile:  c.SourceFile,
	}
	if !c.CreatedAt.IsZero() {
		out.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// SearchInput is the input schema for the inventory_search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"case-insensitive substring to search for"`
	Field string `json:"field,omitempty" jsonschema:"restrict the match to one field, e.g. type, value, or a metadata key"`
}

// SearchOutput is the output schema for the inventory_search tool.
type SearchOutput struct {
	Components []ComponentOutput `json:"components"`
	Count      int               `json:"count"`
}

// GetInput is the input schema for the inventory_get tool.
type GetInput struct {
	ID string `json:"id" jsonschema:"the component ID"`
}

// GetOutput is the output schema for the inventory_get tool.
type GetOutput struct {
	Component ComponentOutput `json:"component"`
}

// ListInput is the input schema for the inventory_list tool.
type ListInput struct {
	Limit  int `json:"limit,omitempty" jsonschema:"maximum number of components to return (default 20)"`
	Offset int `json:"offset,omitempty" jsonschema:"number of components to skip"`
}

// ListOutput is the output schema for the inventory_list tool.
type ListOutput struct {
	Components []ComponentOutput `json:"components"`
	Count      int               `json:"count"`
	HasMore    bool              `json:"has_more"`
}

// StatsOutput is the output schema for the inventory_stats tool.
type StatsOutput struct {
	TotalCount     int            `json:"total_count"`
	TotalQuantity  int            `json:"total_quantity"`
	CountsByType   map[string]int `json:"counts_by_type"`
	MostCommonType string         `json:"most_common_type,omitempty"`
}

// defaultListLimit caps unpaged list calls from LLM clients.
const defaultListLimit = 20

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inventory_search",
		Description: "Search the component inventory by substring, across all fields or one field",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inventory_get",
		Description: "Fetch a single inventory component by ID",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inventory_list",
		Description: "List inventory components in insertion order, with paging",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inventory_stats",
		Description: "Summarise the inventory: counts, quantities, and the most common type",
	}, s.handleStats)
}

// handleSearch handles the inventory_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Inventory.Search(ctx, input.Query, input.Field)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Components: make([]ComponentOutput, len(results)),
		Count:      len(results),
	}
	for i := range results {
		output.Components[i] = toComponentOutput(&results[i])
	}
	return nil, output, nil
}

// handleGet handles the inventory_get tool invocation.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, GetOutput, error) {
	c, err := s.ports.Inventory.Get(ctx, input.ID)
	if err != nil {
		return nil, GetOutput{}, err
	}
	return nil, GetOutput{Component: toComponentOutput(c)}, nil
}

// handleList handles the inventory_list tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	components, hasMore, err := s.ports.Inventory.List(ctx, limit, input.Offset)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Components: make([]ComponentOutput, len(components)),
		Count:      len(components),
		HasMore:    hasMore,
	}
	for i := range components {
		output.Components[i] = toComponentOutput(&components[i])
	}
	return nil, output, nil
}

// handleStats handles the inventory_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatsOutput, error) {
	stats, err := s.ports.Inventory.Stats(ctx)
	if err != nil {
		return nil, StatsOutput{}, err
	}
	return nil, StatsOutput{
		TotalCount:     stats.TotalCount,
		TotalQuantity:  stats.TotalQuantity,
		CountsByType:   stats.CountsByType,
		MostCommonType: stats.MostCommonType,
	}, nil
}
