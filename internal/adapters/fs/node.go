package fs

import (
	"context"

	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the unit hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ProviderNodeID is the unique identifier for the content identity provider Graft node.
	ProviderNodeID graft.ID = "adapter.fs.provider"
)

func init() {
	// Walker Node (Concrete implementation needed by Hasher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	// Content Identity Provider Node
	graft.Register(graft.Node[ports.IdentityProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.IdentityProvider, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewContentProvider(hasher), nil
		},
	})
}
