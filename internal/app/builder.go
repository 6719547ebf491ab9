package app

import (
	"go.trai.ch/cmini/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/cmini/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Config    *config.Config
	Telemetry ports.Telemetry
}

// Close flushes the telemetry session.
func (c *Components) Close() error {
	if c.Telemetry == nil {
		return nil
	}
	return c.Telemetry.Close()
}
