// Package iocache caches immutable snapshot content between runs.
package iocache

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/schema"
)

// SnapshotStoreImpl handles durable snapshot storage using various database backends.
type SnapshotStoreImpl struct {
	db        *sql.DB
	tableName string
	backend   schema.DatabaseBackend
	location  string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// NewSnapshotStore initializes and returns a new SnapshotStore based on the backend type.
func NewSnapshotStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	// Validate table name to prevent SQL injection
	if !tableNameRe.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name: %q", tableName)
	}

	var db *sql.DB
	var err error
	location := connStr

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetCacheDBFilePath()
		}
		location = dbPath
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite cache at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL cache: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=deltaforce
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL cache: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled caching
		return &SnapshotStoreImpl{tableName: tableName, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if _, err := db.Exec(getCreateTableQuery(tableName, backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SnapshotStoreImpl{
		db:        db,
		tableName: tableName,
		backend:   backend,
		location:  location,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				commit_hash VARCHAR(64) PRIMARY KEY,
				content MEDIUMBLOB NOT NULL,
				cached_at BIGINT NOT NULL
			);
		`, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				commit_hash TEXT PRIMARY KEY,
				content BYTEA NOT NULL,
				cached_at BIGINT NOT NULL
			);
		`, tableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				commit_hash TEXT PRIMARY KEY,
				content BLOB NOT NULL,
				cached_at INTEGER NOT NULL
			);
		`, tableName)
	}
}

// placeholders returns positional parameter markers for the backend.
func (s *SnapshotStoreImpl) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Get returns the cached content for a commit hash, or nil when absent.
func (s *SnapshotStoreImpl) Get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT content FROM %s WHERE commit_hash = %s", s.tableName, s.placeholder(1))
	var content []byte
	err := s.db.QueryRow(query, key).Scan(&content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached snapshot: %w", err)
	}
	return content, nil
}

// Set stores the content for a commit hash. Existing entries are replaced,
// although commit content never changes in practice.
func (s *SnapshotStoreImpl) Set(key string, value []byte, timestamp int64) error {
	if s.db == nil {
		return nil
	}
	var query string
	switch s.backend {
	case schema.MySQLBackend:
		query = fmt.Sprintf(
			"INSERT INTO %s (commit_hash, content, cached_at) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE content = VALUES(content), cached_at = VALUES(cached_at)",
			s.tableName)
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(
			"INSERT INTO %s (commit_hash, content, cached_at) VALUES ($1, $2, $3) ON CONFLICT (commit_hash) DO UPDATE SET content = EXCLUDED.content, cached_at = EXCLUDED.cached_at",
			s.tableName)
	default:
		query = fmt.Sprintf(
			"INSERT OR REPLACE INTO %s (commit_hash, content, cached_at) VALUES (?, ?, ?)",
			s.tableName)
	}
	if _, err := s.db.Exec(query, key, value, timestamp); err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}
	return nil
}

// GetStatus returns status information about the snapshot store.
func (s *SnapshotStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{Backend: s.backend, Location: s.location}
	if s.db == nil {
		return status, nil
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.tableName)
	if err := s.db.QueryRow(query).Scan(&status.Entries); err != nil {
		return status, fmt.Errorf("failed to count cached snapshots: %w", err)
	}
	return status, nil
}

// Clear removes all cached snapshots.
func (s *SnapshotStoreImpl) Clear() error {
	if s.db == nil {
		return nil
	}
	if _, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s", s.tableName)); err != nil {
		return fmt.Errorf("failed to clear snapshot cache: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *SnapshotStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
