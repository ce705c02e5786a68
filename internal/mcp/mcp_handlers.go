package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kanade13/deltaforce/core"
	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetPriceHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}

	items := splitItems(request.GetString("items", ""))
	if len(items) == 0 {
		return mcp.NewToolResultError("items must name at least one item"), nil
	}
	cfg.Items = items
	cfg.Fuzzy = request.GetBool("fuzzy", cfg.Fuzzy)
	if b := request.GetInt("bundle_size", 0); b > 0 {
		cfg.BundleSize = b
	}

	if err := contract.RevalidateTimeWindow(cfg, request.GetString("since", ""), request.GetString("until", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid time window: %v", err)), nil
	}

	result, err := core.GetPriceHistoryResult(ctx, cfg, contract.NewLocalGitClient(), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extraction failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	ref := request.GetString("ref", "")

	names, err := core.ListCatalogNames(ctx, cfg, contract.NewLocalGitClient(), ref)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("catalog read failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(names, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// splitItems turns a comma-separated item argument into trimmed names.
func splitItems(raw string) []string {
	var items []string
	for part := range strings.SplitSeq(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
