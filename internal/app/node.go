package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmini/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/cmini/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cmini/internal/adapters/corpus"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cmini/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cmini/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cmini/internal/core/ports"
	"go.trai.ch/cmini/internal/engine/board"
	"go.trai.ch/cmini/internal/engine/community"
	"go.trai.ch/cmini/internal/engine/registry"
	"go.trai.ch/cmini/internal/engine/statcache"
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
			config.NodeID,
			logger.NodeID,
			corpus.NodeID,
			cas.NodeID,
			registry.NodeID,
			statcache.NodeID,
			community.NodeID,
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
			config.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	corpora, err := graft.Dep[ports.CorpusLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[*cas.Store](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registry.Registry](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*statcache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	people, err := graft.Dep[*community.Community](ctx)
	if err != nil {
		return nil, err
	}

	a := New(reg, cache, people, board.NewParser(cfg.FreeChar), corpora, Stores{
		Layouts:   store,
		Community: store,
		Settings:  store,
	}, log, cfg.Privileged)

	// Corrupt data on disk must stop the process before anything is served.
	if err := a.Load(); err != nil {
		return nil, err
	}
	return a, nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Config:    cfg,
		Telemetry: tel,
	}, nil
}
