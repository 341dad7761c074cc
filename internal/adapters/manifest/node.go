package manifest

import (
	"context"

	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/grindlemire/graft"
)

// StoreFactoryNodeID is the unique identifier for the manifest store factory Graft node.
const StoreFactoryNodeID graft.ID = "adapter.manifest.factory"

func init() {
	graft.Register(graft.Node[ports.StoreFactory]{
		ID:        StoreFactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StoreFactory, error) {
			return func(root string) ports.ManifestStore {
				return NewFileStore(root)
			}, nil
		},
	})
}
