package core

import (
	"context"
	"errors"
	"time"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/schema"
)

// SnapshotSource yields dataset snapshots in increasing commit-time order.
// The core pipeline depends on this capability rather than on git directly,
// so it can run against synthetic snapshot sequences in tests.
type SnapshotSource interface {
	// Walk invokes fn once per snapshot. It is single-pass: a second call fails.
	Walk(ctx context.Context, fn func(schema.Snapshot) error) error

	// Unreadable returns the number of commits whose content could not be read.
	Unreadable() int
}

// SnapshotWalker enumerates the commits that touched the tracked dataset file
// and yields one Snapshot per commit, oldest first. When a SnapshotStore is
// configured, raw content is cached by commit hash so repeated runs skip the
// per-commit `git show` calls.
type SnapshotWalker struct {
	client      contract.GitClient
	store       contract.SnapshotStore // may be nil
	repoPath    string
	datasetFile string
	since       time.Time
	until       time.Time

	walked     bool
	unreadable int
}

var _ SnapshotSource = &SnapshotWalker{} // Compile-time check

// NewSnapshotWalker creates a walker over the given repository and dataset file.
// Zero since/until times leave the corresponding bound open.
func NewSnapshotWalker(client contract.GitClient, store contract.SnapshotStore, repoPath, datasetFile string, since, until time.Time) *SnapshotWalker {
	return &SnapshotWalker{
		client:      client,
		store:       store,
		repoPath:    repoPath,
		datasetFile: datasetFile,
		since:       since,
		until:       until,
	}
}

// Walk implements the SnapshotSource interface. Commits whose content cannot
// be read are counted and skipped; only a failure to list history is fatal.
func (w *SnapshotWalker) Walk(ctx context.Context, fn func(schema.Snapshot) error) error {
	if w.walked {
		return errors.New("snapshot walker is single-pass and was already consumed")
	}
	w.walked = true

	commits, err := w.client.ListFileCommits(ctx, w.repoPath, w.datasetFile, w.since, w.until)
	if err != nil {
		return &RepositoryAccessError{Path: w.repoPath, Err: err}
	}

	for _, ref := range commits {
		content, err := w.loadContent(ctx, ref.Hash)
		if err != nil {
			contract.LogWarn("skipping unreadable snapshot "+ref.Hash[:7], err)
			w.unreadable++
			continue
		}
		if err := fn(schema.Snapshot{Hash: ref.Hash, Time: ref.Time, Content: content}); err != nil {
			return err
		}
	}
	return nil
}

// Unreadable implements the SnapshotSource interface.
func (w *SnapshotWalker) Unreadable() int { return w.unreadable }

// loadContent fetches the dataset content for one commit, consulting the
// snapshot store first. Commit content is immutable, so cache entries never
// need invalidation.
func (w *SnapshotWalker) loadContent(ctx context.Context, hash string) ([]byte, error) {
	if w.store != nil {
		if content, err := w.store.Get(hash); err == nil && content != nil {
			return content, nil
		}
	}

	content, err := w.client.ShowFileAtCommit(ctx, w.repoPath, hash, w.datasetFile)
	if err != nil {
		return nil, err
	}

	if w.store != nil {
		if err := w.store.Set(hash, content, time.Now().Unix()); err != nil {
			contract.LogWarn("failed to cache snapshot "+hash[:7], err)
		}
	}
	return content, nil
}
