package cmd

import (
	"github.com/kanade13/deltaforce/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Deltaforce MCP server",
	Long:  `Launch an MCP server that allows AI agents to query item price history via standard tools.`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		// Item names arrive per tool call, so skip the item validation
		// that interactive extraction requires.
		return serveSetup(rootCtx, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
