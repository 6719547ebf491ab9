package corpus

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmini/internal/adapters/config"
	"go.trai.ch/cmini/internal/core/ports"
)

// NodeID is the unique identifier for the corpus loader Graft node.
const NodeID graft.ID = "adapter.corpus_loader"

func init() {
	graft.Register(graft.Node[ports.CorpusLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CorpusLoader, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(cfg.CorporaDir), nil
		},
	})
}
