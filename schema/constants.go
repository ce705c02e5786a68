package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// AggMode represents how a series is condensed onto the time axis.
	AggMode string

	// DatabaseBackend represents the database backend for snapshot caching.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All aggregation modes supported.
const (
	GridAgg   AggMode = "grid" // default: fixed cadence with forward-fill
	DailyAgg  AggMode = "daily"
	WeeklyAgg AggMode = "weekly"
	NoAgg     AggMode = "none"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidAggModes lists all valid aggregation modes.
var ValidAggModes = map[AggMode]struct{}{
	GridAgg:   {},
	DailyAgg:  {},
	WeeklyAgg: {},
	NoAgg:     {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
