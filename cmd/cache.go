package cmd

import (
	"fmt"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/internal/iocache"
	"github.com/kanade13/deltaforce/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on snapshot cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by extraction commands. This avoids Git repo
// validation for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the snapshot content cache (improves performance)",
	Long: `Manage the cache of dataset snapshots read from Git history.

Deltaforce caches the dataset content of each commit so that repeated runs
skip the 'git show' calls for commits already seen. Commit content never
changes, so the cache never goes stale.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached snapshots

Examples:
  # Check cache status
  deltaforce cache status

  # Clear the cache to reclaim disk space
  deltaforce cache clear`,
}

// cacheClearCmd clears the snapshot cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached snapshot content",
	Long: `Delete all cached snapshot content from the configured backend.

Use this when:
- The dataset repository history was rewritten (rebase, force push)
- Reclaiming disk space after analyzing a large history
- Testing performance without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  deltaforce cache clear

  # Clear MySQL cache (set connection string via env variable)
  DELTAFORCE_CACHE_BACKEND=mysql DELTAFORCE_CACHE_DB_CONNECT="..." deltaforce cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearStore(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows snapshot cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the snapshot content cache.

Displays:
- Backend type and location
- Total number of cached snapshots

Examples:
  # Check cache status
  deltaforce cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		mgr, err := iocache.InitStore(cfg.CacheBackend, cfg.CacheDBConnect)
		if err != nil {
			contract.LogFatal("Failed to initialize cache", err)
		}
		status, err := mgr.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintStoreStatus(status)
	},
}
