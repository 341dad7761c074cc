package stamper

import (
	"context"

	"github.com/assetstamp/stamp/internal/adapters/fs"
	"github.com/assetstamp/stamp/internal/adapters/telemetry/progrock"
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the stamper engine Graft node.
const NodeID graft.ID = "engine.stamper"

func init() {
	graft.Register(graft.Node[*Stamper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ProviderNodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Stamper, error) {
			provider, err := graft.Dep[ports.IdentityProvider](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewStamper(provider, tracer), nil
		},
	})
}
