package buildinfo

import (
	"context"

	"github.com/grindlemire/graft"
)

// ProviderNodeID is the unique identifier for the build info provider Graft node.
// Registered under its concrete type: the content provider owns the
// ports.IdentityProvider slot, and consumers select this one explicitly.
const ProviderNodeID graft.ID = "adapter.buildinfo.provider"

func init() {
	graft.Register(graft.Node[*Provider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Provider, error) {
			return NewProvider(), nil
		},
	})
}
