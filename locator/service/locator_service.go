// locator/service/locator_service.go
package service

import (
	"context"
	"fmt"

	"github.com/morvane/service-locator/locator/store"
)

// Custom Errors for clear communication to API layer
var (
	ErrServiceNotFound = fmt.Errorf("service not found")
)

// LocatorService encapsulates the lookup logic over the immutable service table.
type LocatorService struct {
	table *store.ServiceTable
}

// NewLocatorService creates a new LocatorService instance.
func NewLocatorService(table *store.ServiceTable) *LocatorService {
	return &LocatorService{
		table: table,
	}
}

// Lookup resolves a service name to its registered record. The table is an
// in-memory snapshot, so the read never blocks and ctx is never consulted.
func (ls *LocatorService) Lookup(ctx context.Context, name string) (store.ServiceRecord, error) {
	rec, ok := ls.table.Lookup(name)
	if !ok {
		return store.ServiceRecord{}, ErrServiceNotFound
	}
	return rec, nil
}
