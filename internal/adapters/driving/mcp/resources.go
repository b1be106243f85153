package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for partsbin resources.
	uriScheme = "partsbin://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for inventory statistics.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Aggregate statistics over the component inventory",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// Template for individual components.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "components/{componentId}",
		Name:        "component",
		Description: "A single inventory component record",
		MIMEType:    "application/json",
	}, s.handleComponentResource)
}

// handleStatsResource returns inventory statistics as JSON.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	stats, err := s.ports.Inventory.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}

	data, err := json.MarshalIndent(StatsOutput{
		TotalCount:     stats.TotalCount,
		TotalQuantity:  stats.TotalQuantity,
		CountsByType:   stats.CountsByType,
		MostCommonType: stats.MostCommonType,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleComponentResource returns a single component record.
func (s *Server) handleComponentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract componentId from URI: partsbin://components/{componentId}
	componentID := extractComponentID(req.Params.URI)
	if componentID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	c, err := s.ports.Inventory.Get(ctx, componentID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(toComponentOutput(c), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling component: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractComponentID extracts the component ID from a URI like
// partsbin://components/{componentId}.
func extractComponentID(uri string) string {
	const prefix = uriScheme + "components/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
