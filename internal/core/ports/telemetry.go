package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of long-running work such as a resync.
type Telemetry interface {
	// Record starts a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Log attaches a line of output to the vertex.
	Log(msg string)
	// Cached marks the work as skipped because a valid result already existed.
	Cached()
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
