package cmd

import (
	"github.com/kanade13/deltaforce/core"
	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/spf13/cobra"
)

// historyCmd reconstructs per-item price history from the dataset's Git log.
var historyCmd = &cobra.Command{
	Use:   "history [repo-path]",
	Short: "Extract per-item price time series from the dataset history",
	Long: `Walk every commit that touched the price dataset and reconstruct an
ordered price series for each requested item.

Ammunition items are priced per round in the dataset; their prices are
scaled to a purchasable bundle (60 rounds by default) so the numbers match
what a player actually pays.

The raw series is then placed onto a fixed time grid (10 minutes by
default) with forward-filling, or condensed to daily/weekly means.

Examples:
  # Track one rifle round and one armor plate
  deltaforce history -i "7.62x54R BT" -i "Heavy Plate"

  # Fuzzy matching expands to every matching catalog item
  deltaforce history --fuzzy -i 5.56

  # Daily means for the last month, exported as CSV
  deltaforce history -i "12 Gauge Slug" --agg daily --since "1 month ago" --output csv

  # Raw observations without resampling
  deltaforce history -i "Heavy Plate" --agg none --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePriceHistory(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot extract price history", err)
		}
	},
}
