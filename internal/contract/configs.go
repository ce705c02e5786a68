package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/kanade13/deltaforce/schema"
)

// Default values for configuration.
const (
	DefaultDatasetFile = "price.json"
	DefaultBundleSize  = 60
	DefaultCadence     = 10 * time.Minute
	DefaultPrecision   = 2
	MaxPrecision       = 4
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// DateOnlyFormat accepts bare dates like 2025-08-20 on the CLI.
const DateOnlyFormat = "2006-01-02"

// Config holds the runtime configuration for an extraction run.
// This struct remains the "final, validated" config and is the single
// configuration value handed to the core pipeline.
type Config struct {
	RepoPath    string
	DatasetFile string

	Items      []string // Deduplicated, first-occurrence order preserved
	Fuzzy      bool
	BundleSize int

	Dedup     bool // Suppress consecutive identical prices per series
	Agg       schema.AggMode
	Cadence   time.Duration
	FillLimit int // Max consecutive grid points filled from one observation; 0 = unlimited

	Since time.Time
	Until time.Time

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Workers    int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	DatasetFile    string `mapstructure:"dataset-file"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Workers        int    `mapstructure:"workers"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`

	// --- Fields from historyCmd.Flags() ---
	Items      []string `mapstructure:"item"`
	Fuzzy      bool     `mapstructure:"fuzzy"`
	BundleSize int      `mapstructure:"ammo-bundle-size"`
	Dedup      bool     `mapstructure:"dedup"`
	Agg        string   `mapstructure:"agg"`
	Cadence    string   `mapstructure:"cadence"`
	FillLimit  int      `mapstructure:"fill-limit"`
	Since      string   `mapstructure:"since"`
	Until      string   `mapstructure:"until"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Items != nil {
		clone.Items = make([]string, len(c.Items))
		copy(clone.Items, c.Items)
	}
	return &clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := ProcessAndValidateBase(ctx, cfg, client, input); err != nil {
		return err
	}
	if err := processItems(cfg, input); err != nil {
		return err
	}
	processBundle(cfg, input)
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := processResampling(cfg, input); err != nil {
		return err
	}
	return nil
}

// ProcessAndValidateServe prepares a Config for long-running serving where
// item names arrive per request rather than on the command line.
func ProcessAndValidateServe(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := ProcessAndValidateBase(ctx, cfg, client, input); err != nil {
		return err
	}
	cfg.Fuzzy = input.Fuzzy
	processBundle(cfg, input)
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	return processResampling(cfg, input)
}

// ProcessAndValidateBase validates the inputs every command needs: output
// settings, cache backend and the repository location. Commands that do not
// extract history (catalog, mcp startup) stop here.
func ProcessAndValidateBase(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return resolveGitPath(ctx, cfg, client, input)
}

// RevalidateTimeWindow re-parses since/until strings onto an existing Config.
// Used by callers that adjust the window after the initial validation pass,
// such as the MCP server.
func RevalidateTimeWindow(cfg *Config, sinceStr, untilStr string) error {
	return processTimeRange(cfg, &ConfigRawInput{Since: sinceStr, Until: untilStr})
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-item, non-time fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- 1. Dataset File Validation ---
	cfg.DatasetFile = strings.TrimSpace(input.DatasetFile)
	if cfg.DatasetFile == "" {
		cfg.DatasetFile = DefaultDatasetFile
	}
	if filepath.IsAbs(cfg.DatasetFile) {
		return fmt.Errorf("dataset-file must be a path relative to the repository root (received %q)", input.DatasetFile)
	}

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 3. Precision and Workers Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Color Flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 5. Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// processItems deduplicates requested item names while preserving the order
// in which they were first given.
func processItems(cfg *Config, input *ConfigRawInput) error {
	cfg.Fuzzy = input.Fuzzy

	seen := make(map[string]struct{})
	cfg.Items = cfg.Items[:0]
	for _, raw := range input.Items {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		cfg.Items = append(cfg.Items, item)
	}
	if len(cfg.Items) == 0 {
		return fmt.Errorf("at least one non-empty --item is required")
	}
	return nil
}

// processBundle applies the ammunition bundle size. The dataset prices single
// rounds; a bundle below 1 is treated as pass-through rather than rejected.
func processBundle(cfg *Config, input *ConfigRawInput) {
	cfg.BundleSize = input.BundleSize
	if cfg.BundleSize < 1 {
		cfg.BundleSize = 1
	}
}

// processTimeRange handles the since/until date parsing and validation.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	now := time.Now()

	parse := func(s string) (time.Time, error) {
		if t, err := time.Parse(DateTimeFormat, s); err == nil {
			return t, nil
		}
		if t, err := time.Parse(DateOnlyFormat, s); err == nil {
			return t, nil
		}
		if t, err := ParseRelativeTime(s, now); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("invalid date format for '%s'. Expected ISO8601, YYYY-MM-DD or 'N [units] ago'", s)
	}

	if input.Since != "" {
		t, err := parse(input.Since)
		if err != nil {
			return fmt.Errorf("invalid --since: %w", err)
		}
		cfg.Since = t
	}
	if input.Until != "" {
		t, err := parse(input.Until)
		if err != nil {
			return fmt.Errorf("invalid --until: %w", err)
		}
		cfg.Until = t
	}

	if !cfg.Since.IsZero() && !cfg.Until.IsZero() && cfg.Since.After(cfg.Until) {
		return fmt.Errorf("since (%s) cannot be after until (%s)",
			cfg.Since.Format(DateTimeFormat), cfg.Until.Format(DateTimeFormat))
	}
	return nil
}

// processResampling handles the aggregation mode, cadence and fill limit.
func processResampling(cfg *Config, input *ConfigRawInput) error {
	cfg.Dedup = input.Dedup

	cfg.Agg = schema.AggMode(strings.ToLower(input.Agg))
	if _, ok := schema.ValidAggModes[cfg.Agg]; !ok {
		return fmt.Errorf("invalid agg mode '%s'. must be grid, daily, weekly, none", input.Agg)
	}

	if input.Cadence != "" {
		cadence, err := ParseCadence(input.Cadence)
		if err != nil {
			return fmt.Errorf("invalid cadence: %w", err)
		}
		cfg.Cadence = cadence
	}
	if cfg.Cadence == 0 {
		cfg.Cadence = DefaultCadence
	}

	if input.FillLimit < 0 {
		return fmt.Errorf("fill-limit must be 0 (unlimited) or positive (received %d)", input.FillLimit)
	}
	cfg.FillLimit = input.FillLimit
	return nil
}

// resolveGitPath resolves the Git repository root from the positional argument.
func resolveGitPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}

	gitRoot, err := client.GetRepoRoot(ctx, filepath.Clean(absSearchPath))
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot
	return nil
}
