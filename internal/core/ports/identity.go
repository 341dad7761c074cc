package ports

import (
	"context"

	"github.com/assetstamp/stamp/internal/core/domain"
)

// IdentityProvider resolves the version tag of a compiled unit.
//
// Implementations must be deterministic: for identical unit content the same
// tag is returned on every call, on every machine. The call is read-only and
// safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=identity.go -destination=mocks/mock_identity.go -package=mocks
type IdentityProvider interface {
	// IdentityOf returns the current version tag for the referenced unit.
	// It fails with domain.ErrUnitNotFound or domain.ErrUnitNotResolvable
	// when the reference cannot be located; it never returns an empty tag
	// together with a nil error.
	IdentityOf(ctx context.Context, ref domain.UnitRef) (domain.VersionTag, error)
}
