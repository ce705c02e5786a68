// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/kanade13/deltaforce/schema"
)

// CommitRef identifies one commit that touched the tracked dataset file.
type CommitRef struct {
	Hash string
	Time time.Time
}

// GitClient defines the necessary operations for reading dataset history.
// This allows the core extraction logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Reference Resolution ---

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// --- Dataset History ---

	// ListFileCommits returns the commits that modified the given file,
	// oldest first, optionally bounded by since/until (zero time = unbounded).
	ListFileCommits(ctx context.Context, repoPath string, path string, since, until time.Time) ([]CommitRef, error)

	// ShowFileAtCommit returns the content of the given file as of the given commit.
	ShowFileAtCommit(ctx context.Context, repoPath string, hash string, path string) ([]byte, error)
}

// StoreManager defines the interface for accessing the snapshot store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetSnapshotStore() SnapshotStore
}

// SnapshotStore caches parsed snapshot content keyed by commit hash, so
// repeated runs against the same repository skip `git show` and re-parsing.
type SnapshotStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, timestamp int64) error
	GetStatus() (schema.StoreStatus, error)
	Clear() error
	Close() error
}
