package iocache

import (
	"fmt"

	"github.com/kanade13/deltaforce/schema"
)

// PrintStoreStatus prints snapshot store status information.
func PrintStoreStatus(status schema.StoreStatus) {
	fmt.Printf("Cache Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Printf("Location: %s\n", status.Location)
	fmt.Printf("Cached Snapshots: %d\n", status.Entries)
}
