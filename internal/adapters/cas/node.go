package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmini/internal/adapters/config"
)

// NodeID is the unique identifier for the file store Graft node.
const NodeID graft.ID = "adapter.cas"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.DataDir), nil
		},
	})
}
