package iocache

import (
	"sync"

	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/schema"
)

// snapshotTable is the table holding cached snapshot content.
const snapshotTable = "deltaforce_snapshots"

// StoreManagerImpl manages the snapshot store instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	snapshots    contract.SnapshotStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetSnapshotStore returns the snapshot store.
func (mgr *StoreManagerImpl) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}

// InitStore initializes a store manager for the configured backend. A "none"
// backend yields a manager whose store performs no persistence.
func InitStore(backend schema.DatabaseBackend, connStr string) (*StoreManagerImpl, error) {
	store, err := NewSnapshotStore(snapshotTable, backend, connStr)
	if err != nil {
		return nil, err
	}
	mgr := &StoreManagerImpl{}
	mgr.Lock()
	mgr.snapshots = store
	mgr.Unlock()
	return mgr, nil
}
