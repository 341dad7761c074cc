package config

import (
	"context"

	"github.com/assetstamp/stamp/internal/adapters/logger"
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/grindlemire/graft"
)

// LoaderNodeID is the unique identifier for the config loader Graft node.
const LoaderNodeID graft.ID = "adapter.config.loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
