package ports

import "github.com/assetstamp/stamp/internal/core/domain"

// Hasher computes the canonical content hash of a unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeUnitHash hashes the unit definition and all input file content
	// into a single version tag. Input paths are resolved relative to root.
	ComputeUnitHash(unit *domain.Unit, root string) (domain.VersionTag, error)
}
