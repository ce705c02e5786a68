package schema

// StoreStatus describes the state of the snapshot store.
type StoreStatus struct {
	Backend  DatabaseBackend `json:"backend"`
	Location string          `json:"location"` // File path or connection target, empty for none
	Entries  int64           `json:"entries"`
}
