package iocache

import (
	"testing"
	"time"

	"github.com/kanade13/deltaforce/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshotStoreSQLiteRoundtrip stores and reads back snapshot content
// using an in-memory SQLite database.
func TestSnapshotStoreSQLiteRoundtrip(t *testing.T) {
	store, err := NewSnapshotStore("test_snapshots", schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	content := []byte(`[{"name":"Heavy Plate","price":100}]`)
	require.NoError(t, store.Set("aaaaaaa1", content, time.Now().Unix()))

	got, err := store.Get("aaaaaaa1")
	require.NoError(t, err)
	assert.Equal(t, content, got)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, int64(1), status.Entries)

	require.NoError(t, store.Clear())
	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.Entries)
}

// TestSnapshotStoreGetMissing returns nil content without an error.
func TestSnapshotStoreGetMissing(t *testing.T) {
	store, err := NewSnapshotStore("test_snapshots", schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	got, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestSnapshotStoreSetReplaces overwrites an existing entry for the same hash.
func TestSnapshotStoreSetReplaces(t *testing.T) {
	store, err := NewSnapshotStore("test_snapshots", schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("aaaaaaa1", []byte("v1"), 1))
	require.NoError(t, store.Set("aaaaaaa1", []byte("v2"), 2))

	got, err := store.Get("aaaaaaa1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

// TestSnapshotStoreNoneBackend performs no persistence at all.
func TestSnapshotStoreNoneBackend(t *testing.T) {
	store, err := NewSnapshotStore("test_snapshots", schema.NoneBackend, "")
	require.NoError(t, err)

	require.NoError(t, store.Set("aaaaaaa1", []byte("v1"), 1))
	got, err := store.Get("aaaaaaa1")
	require.NoError(t, err)
	assert.Nil(t, got)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.NoneBackend, status.Backend)
	assert.Equal(t, int64(0), status.Entries)
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

// TestSnapshotStoreInvalidTableName rejects names that could smuggle SQL.
func TestSnapshotStoreInvalidTableName(t *testing.T) {
	_, err := NewSnapshotStore("bad;table", schema.SQLiteBackend, ":memory:")
	assert.Error(t, err)
}

// TestInitStore wires the manager to a working store.
func TestInitStore(t *testing.T) {
	mgr, err := InitStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)

	store := mgr.GetSnapshotStore()
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("aaaaaaa1", []byte("v1"), 1))
	got, err := store.Get("aaaaaaa1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}

// TestInitStoreNoneBackend yields a manager whose store is a no-op.
func TestInitStoreNoneBackend(t *testing.T) {
	mgr, err := InitStore(schema.NoneBackend, "")
	require.NoError(t, err)
	assert.NotNil(t, mgr.GetSnapshotStore())
}
