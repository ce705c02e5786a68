package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/internal/iocache"
	"github.com/kanade13/deltaforce/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// storeManager is the global persistence manager instance.
var storeManager contract.StoreManager

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "deltaforce",
	Short:              "Reconstruct item price history from a Git-tracked dataset.",
	Long:               `Deltaforce walks the Git history of a price dataset and turns it into per-item time series.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".deltaforce") // Name of config file (without extension)
		viper.SetConfigType("yaml")        // We'll use YAML format
		viper.AddConfigPath(".")           // Look in the current directory
		viper.AddConfigPath("$HOME")       // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("DELTAFORCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("dataset-file", contract.DefaultDatasetFile)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("agg", schema.GridAgg)
	viper.SetDefault("cadence", "10 minutes")
	viper.SetDefault("ammo-bundle-size", contract.DefaultBundleSize)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs full validation for extraction commands.
func sharedSetup(ctx context.Context, _ *cobra.Command, args []string) error {
	if err := unmarshalInput(args); err != nil {
		return err
	}

	// Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	client := contract.NewLocalGitClient()
	if err := contract.ProcessAndValidate(ctx, cfg, client, input); err != nil {
		return err
	}

	return initPersistence()
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// baseSetup validates everything except the history-only inputs. Used by
// commands that read the repository but take no item list.
func baseSetup(ctx context.Context, args []string) error {
	if err := unmarshalInput(args); err != nil {
		return err
	}
	client := contract.NewLocalGitClient()
	if err := contract.ProcessAndValidateBase(ctx, cfg, client, input); err != nil {
		return err
	}
	return initPersistence()
}

// baseSetupWrapper wraps baseSetup to provide PreRunE for non-history commands.
func baseSetupWrapper(_ *cobra.Command, args []string) error {
	return baseSetup(rootCtx, args)
}

// serveSetup validates everything except the item list, which arrives per
// request when serving.
func serveSetup(ctx context.Context, args []string) error {
	if err := unmarshalInput(args); err != nil {
		return err
	}
	client := contract.NewLocalGitClient()
	if err := contract.ProcessAndValidateServe(ctx, cfg, client, input); err != nil {
		return err
	}
	return initPersistence()
}

// unmarshalInput merges the config file, env and flags into the raw input.
func unmarshalInput(args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.RepoPathStr = args[0]
	} else {
		input.RepoPathStr = "."
	}
	return nil
}

// initPersistence initializes the snapshot store with validated config.
func initPersistence() error {
	mgr, err := iocache.InitStore(cfg.CacheBackend, cfg.CacheDBConnect)
	if err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}
	storeManager = mgr
	return nil
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetStoreManager sets the global store manager.
func SetStoreManager(mgr contract.StoreManager) {
	storeManager = mgr
}
