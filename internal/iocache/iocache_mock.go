package iocache

import (
	"github.com/kanade13/deltaforce/internal/contract"
	"github.com/kanade13/deltaforce/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a testify mock for the StoreManager type.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetSnapshotStore implements the contract.StoreManager interface.
func (m *MockStoreManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a testify mock for the SnapshotStore type.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Get implements the contract.SnapshotStore interface.
func (m *MockSnapshotStore) Get(key string) ([]byte, error) {
	ret := m.Called(key)
	content, _ := ret.Get(0).([]byte)
	return content, ret.Error(1)
}

// Set implements the contract.SnapshotStore interface.
func (m *MockSnapshotStore) Set(key string, value []byte, timestamp int64) error {
	ret := m.Called(key, value, timestamp)
	return ret.Error(0)
}

// GetStatus implements the contract.SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.StoreStatus, error) {
	ret := m.Called()
	status, _ := ret.Get(0).(schema.StoreStatus)
	return status, ret.Error(1)
}

// Clear implements the contract.SnapshotStore interface.
func (m *MockSnapshotStore) Clear() error {
	return m.Called().Error(0)
}

// Close implements the contract.SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	return m.Called().Error(0)
}
