package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/internal/iocache"
	"github.com/kanade13/deltaforce/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	walkTime1 = time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC)
	walkTime2 = time.Date(2025, time.August, 20, 10, 15, 0, 0, time.UTC)
)

// TestWalkerYieldsSnapshotsInOrder walks the listed commits oldest first.
func TestWalkerYieldsSnapshotsInOrder(t *testing.T) {
	ctx := context.Background()
	mockGit := &contract.MockGitClient{}
	commits := []contract.CommitRef{
		{Hash: "aaaaaaa1", Time: walkTime1},
		{Hash: "bbbbbbb2", Time: walkTime2},
	}
	mockGit.On("ListFileCommits", ctx, "/repo", "price.json", time.Time{}, time.Time{}).Return(commits, nil)
	mockGit.On("ShowFileAtCommit", ctx, "/repo", "aaaaaaa1", "price.json").Return([]byte(`[]`), nil)
	mockGit.On("ShowFileAtCommit", ctx, "/repo", "bbbbbbb2", "price.json").Return([]byte(`[]`), nil)

	w := NewSnapshotWalker(mockGit, nil, "/repo", "price.json", time.Time{}, time.Time{})

	var seen []schema.Snapshot
	err := w.Walk(ctx, func(snap schema.Snapshot) error {
		seen = append(seen, snap)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, "aaaaaaa1", seen[0].Hash)
	assert.Equal(t, walkTime1, seen[0].Time)
	assert.Equal(t, "bbbbbbb2", seen[1].Hash)
	assert.Equal(t, 0, w.Unreadable())
	mockGit.AssertExpectations(t)
}

// TestWalkerIsSinglePass fails on a second Walk call.
func TestWalkerIsSinglePass(t *testing.T) {
	ctx := context.Background()
	mockGit := &contract.MockGitClient{}
	mockGit.On("ListFileCommits", ctx, "/repo", "price.json", time.Time{}, time.Time{}).Return([]contract.CommitRef{}, nil)

	w := NewSnapshotWalker(mockGit, nil, "/repo", "price.json", time.Time{}, time.Time{})
	noop := func(schema.Snapshot) error { return nil }

	require.NoError(t, w.Walk(ctx, noop))
	assert.Error(t, w.Walk(ctx, noop))
}

// TestWalkerListFailure surfaces a RepositoryAccessError when history cannot
// be listed at all.
func TestWalkerListFailure(t *testing.T) {
	ctx := context.Background()
	mockGit := &contract.MockGitClient{}
	mockGit.On("ListFileCommits", ctx, "/repo", "price.json", time.Time{}, time.Time{}).
		Return(nil, errors.New("not a git repository"))

	w := NewSnapshotWalker(mockGit, nil, "/repo", "price.json", time.Time{}, time.Time{})
	err := w.Walk(ctx, func(schema.Snapshot) error { return nil })
	require.Error(t, err)

	var accessErr *RepositoryAccessError
	require.True(t, errors.As(err, &accessErr))
	assert.Equal(t, "/repo", accessErr.Path)
}

// TestWalkerSkipsUnreadableCommits counts commits whose content cannot be
// read and keeps walking.
func TestWalkerSkipsUnreadableCommits(t *testing.T) {
	ctx := context.Background()
	mockGit := &contract.MockGitClient{}
	commits := []contract.CommitRef{
		{Hash: "aaaaaaa1", Time: walkTime1},
		{Hash: "bbbbbbb2", Time: walkTime2},
	}
	mockGit.On("ListFileCommits", ctx, "/repo", "price.json", time.Time{}, time.Time{}).Return(commits, nil)
	mockGit.On("ShowFileAtCommit", ctx, "/repo", "aaaaaaa1", "price.json").Return(nil, errors.New("object missing"))
	mockGit.On("ShowFileAtCommit", ctx, "/repo", "bbbbbbb2", "price.json").Return([]byte(`[]`), nil)

	w := NewSnapshotWalker(mockGit, nil, "/repo", "price.json", time.Time{}, time.Time{})

	count := 0
	err := w.Walk(ctx, func(schema.Snapshot) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, w.Unreadable())
}

// TestWalkerCacheHit serves cached content without a git show call.
func TestWalkerCacheHit(t *testing.T) {
	ctx := context.Background()
	mockGit := &contract.MockGitClient{}
	commits := []contract.CommitRef{{Hash: "aaaaaaa1", Time: walkTime1}}
	mockGit.On("ListFileCommits", ctx, "/repo", "price.json", time.Time{}, time.Time{}).Return(commits, nil)

	mockStore := &iocache.MockSnapshotStore{}
	mockStore.On("Get", "aaaaaaa1").Return([]byte(`[{"name":"Heavy Plate","price":1}]`), nil)

	w := NewSnapshotWalker(mockGit, mockStore, "/repo", "price.json", time.Time{}, time.Time{})
	var content []byte
	err := w.Walk(ctx, func(snap schema.Snapshot) error {
		content = snap.Content
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, string(content), "Heavy Plate")

	mockGit.AssertNotCalled(t, "ShowFileAtCommit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertExpectations(t)
}

// TestWalkerCacheMiss fetches content from git and stores it for next time.
func TestWalkerCacheMiss(t *testing.T) {
	ctx := context.Background()
	mockGit := &contract.MockGitClient{}
	commits := []contract.CommitRef{{Hash: "aaaaaaa1", Time: walkTime1}}
	mockGit.On("ListFileCommits", ctx, "/repo", "price.json", time.Time{}, time.Time{}).Return(commits, nil)
	mockGit.On("ShowFileAtCommit", ctx, "/repo", "aaaaaaa1", "price.json").Return([]byte(`[]`), nil)

	mockStore := &iocache.MockSnapshotStore{}
	mockStore.On("Get", "aaaaaaa1").Return(nil, nil)
	mockStore.On("Set", "aaaaaaa1", []byte(`[]`), mock.AnythingOfType("int64")).Return(nil)

	w := NewSnapshotWalker(mockGit, mockStore, "/repo", "price.json", time.Time{}, time.Time{})
	err := w.Walk(ctx, func(schema.Snapshot) error { return nil })
	require.NoError(t, err)

	mockGit.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}
