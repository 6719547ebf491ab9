package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cmini/internal/adapters/config"
	"go.trai.ch/cmini/internal/adapters/telemetry/progrock"
	"go.trai.ch/cmini/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Telemetry), nil
		},
	})
}

// New returns the telemetry backend named by backend, falling back to progrock.
func New(backend string) ports.Telemetry {
	switch backend {
	case config.TelemetryOTel:
		return NewOTelTracer()
	case config.TelemetryNone:
		return NewNoop()
	default:
		return progrock.New()
	}
}
