package fs

import (
	"context"

	"github.com/assetstamp/stamp/internal/core/domain"
	"github.com/assetstamp/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IdentityProvider = (*ContentProvider)(nil)

// ContentProvider resolves unit identity from input file content.
// This is the deterministic-build path: the tag depends only on the unit
// definition and the bytes of its inputs.
type ContentProvider struct {
	hasher ports.Hasher
}

// NewContentProvider creates a new ContentProvider backed by the given hasher.
func NewContentProvider(hasher ports.Hasher) *ContentProvider {
	return &ContentProvider{hasher: hasher}
}

// IdentityOf returns the content-derived version tag for the referenced unit.
func (p *ContentProvider) IdentityOf(ctx context.Context, ref domain.UnitRef) (domain.VersionTag, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if ref.Unit == nil {
		return "", zerr.With(domain.ErrUnitNotResolvable, "reason", "reference carries no unit")
	}
	return p.hasher.ComputeUnitHash(ref.Unit, ref.Root)
}
