// Package cmd defines the command-line interface for deltaforce.
package cmd

import (
	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("dataset-file", contract.DefaultDatasetFile, "Dataset path relative to the repository root")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for price columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyCmd to Viper
	historyCmd.Flags().StringSliceP("item", "i", nil, "Item name to extract (repeatable)")
	historyCmd.Flags().Bool("fuzzy", false, "Match item names by case-insensitive substring")
	historyCmd.Flags().Int("ammo-bundle-size", contract.DefaultBundleSize, "Rounds per bundle for ammunition prices (1 disables scaling)")
	historyCmd.Flags().Bool("dedup", false, "Drop consecutive identical prices per series")
	historyCmd.Flags().String("agg", string(schema.GridAgg), "Aggregation: grid or daily or weekly or none")
	historyCmd.Flags().String("cadence", "10 minutes", "Grid cadence (e.g. '10 minutes', '1 hour')")
	historyCmd.Flags().Int("fill-limit", 0, "Max consecutive grid points filled from one observation (0 = unlimited)")
	historyCmd.Flags().String("since", "", "Start date in ISO8601, YYYY-MM-DD or time ago")
	historyCmd.Flags().String("until", "", "End date in ISO8601, YYYY-MM-DD or time ago")
	if err := viper.BindPFlags(historyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history flags", err)
	}

	// Bind all flags of catalogCmd to Viper
	catalogCmd.Flags().String("ref", "", "Git reference to read the catalog from (defaults to HEAD)")
	if err := viper.BindPFlags(catalogCmd.Flags()); err != nil {
		contract.LogFatal("Error binding catalog flags", err)
	}
}
