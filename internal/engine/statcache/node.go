package statcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmini/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cmini/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cmini/internal/adapters/corpus"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cmini/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cmini/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cmini/internal/core/ports"
	"go.trai.ch/cmini/internal/engine/analyzer"
)

// NodeID is the unique identifier for the stat cache Graft node.
const NodeID graft.ID = "engine.statcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			analyzer.NodeID,
			corpus.NodeID,
			cas.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			classifier, err := graft.Dep[*analyzer.Classifier](ctx)
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

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(classifier, corpora, store, log, tel, cfg.Workers), nil
		},
	})
}
