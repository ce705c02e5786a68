// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the deltaforce MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Deltaforce Price History Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_price_history ---
	s.AddTool(mcp.NewTool("get_price_history",
		mcp.WithDescription("Reconstruct the price history of one or more items from the dataset's git history."),
		mcp.WithString("items", mcp.Description("Comma-separated item names to look up."), mcp.Required()),
		mcp.WithBoolean("fuzzy", mcp.Description("Use case-insensitive substring matching instead of exact names.")),
		mcp.WithNumber("bundle_size", mcp.Description("Rounds per bundle for ammunition prices (default 60, 1 disables scaling).")),
		mcp.WithString("since", mcp.Description("Start of the time window (ISO8601, YYYY-MM-DD or 'N days ago').")),
		mcp.WithString("until", mcp.Description("End of the time window.")),
		mcp.WithString("repo_path", mcp.Description("Path to the dataset Git repository (defaults to the configured one).")),
	), h.handleGetPriceHistory)

	// --- 2. Tool: list_items ---
	s.AddTool(mcp.NewTool("list_items",
		mcp.WithDescription("List the item names present in the price dataset at HEAD."),
		mcp.WithString("repo_path", mcp.Description("Path to the dataset Git repository.")),
		mcp.WithString("ref", mcp.Description("Git reference to read the catalog from (defaults to HEAD).")),
	), h.handleListItems)

	return s
}

// StartMCPServer starts the deltaforce MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
