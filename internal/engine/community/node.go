package community

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmini/internal/adapters/config" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the community Graft node.
const NodeID graft.ID = "engine.community"

func init() {
	graft.Register(graft.Node[*Community]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Community, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.DefaultCorpus), nil
		},
	})
}
