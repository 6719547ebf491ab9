package analyzer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmini/internal/adapters/config" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the classifier Graft node.
const NodeID graft.ID = "engine.analyzer"

func init() {
	graft.Register(graft.Node[*Classifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Classifier, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			table, err := OpenTable(cfg.Table, cfg.TableExplicit)
			if err != nil {
				return nil, err
			}
			return NewClassifier(table), nil
		},
	})
}
