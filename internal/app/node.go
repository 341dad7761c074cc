package app

import (
	"context"

	"github.com/assetstamp/stamp/internal/adapters/buildinfo" //nolint:depguard // Wired in app layer
	"github.com/assetstamp/stamp/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/assetstamp/stamp/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/assetstamp/stamp/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"github.com/assetstamp/stamp/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/assetstamp/stamp/internal/core/ports"
	"github.com/assetstamp/stamp/internal/engine/stamper"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LoaderNodeID,
			manifest.StoreFactoryNodeID,
			stamper.NodeID,
			buildinfo.ProviderNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	storeFactory, err := graft.Dep[ports.StoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	s, err := graft.Dep[*stamper.Stamper](ctx)
	if err != nil {
		return nil, err
	}

	binary, err := graft.Dep[*buildinfo.Provider](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, storeFactory, s, binary, fileWatcher, log), nil
}
