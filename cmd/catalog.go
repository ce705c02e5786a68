package cmd

import (
	"github.com/kanade13/deltaforce/core"
	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// catalogCmd lists the item names available in the dataset.
var catalogCmd = &cobra.Command{
	Use:   "catalog [repo-path]",
	Short: "List the item names present in the dataset",
	Long: `Print every item name found in the price dataset, one per line.

Dataset names include condition suffixes and exact spacing, so use this
command to discover the precise names that 'history' expects in exact mode.

Examples:
  # List the catalog at HEAD
  deltaforce catalog

  # List the catalog as of an older commit
  deltaforce catalog --ref v1.2.0

  # Grep for ammunition variants
  deltaforce catalog | grep -i gauge`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: baseSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCatalog(rootCtx, cfg, viper.GetString("ref")); err != nil {
			contract.LogFatal("Cannot list catalog", err)
		}
	},
}
