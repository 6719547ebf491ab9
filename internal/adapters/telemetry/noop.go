package telemetry

import (
	"context"

	"go.trai.ch/cmini/internal/core/ports"
)

// Noop is a ports.Telemetry that records nothing.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns ctx unchanged and a vertex that discards everything.
func (*Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (*Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Log(string)     {}
func (noopVertex) Cached()        {}
func (noopVertex) Complete(error) {}
