package ports

import "github.com/assetstamp/stamp/internal/core/domain"

// ManifestStore persists resolved version tags between invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the record for a given unit name.
	// Returns nil, nil if not found.
	Get(unitName string) (*domain.Record, error)

	// Put stores the record.
	Put(record domain.Record) error
}

// StoreFactory creates a ManifestStore rooted at a project directory.
// The root is only known after configuration discovery, so construction
// is deferred to the application layer.
type StoreFactory func(root string) ManifestStore
