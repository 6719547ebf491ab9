// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cmini/internal/adapters/cas"
	_ "go.trai.ch/cmini/internal/adapters/config"
	_ "go.trai.ch/cmini/internal/adapters/corpus"
	_ "go.trai.ch/cmini/internal/adapters/logger"
	_ "go.trai.ch/cmini/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cmini/internal/app"
	_ "go.trai.ch/cmini/internal/engine/analyzer"
	_ "go.trai.ch/cmini/internal/engine/community"
	_ "go.trai.ch/cmini/internal/engine/registry"
	_ "go.trai.ch/cmini/internal/engine/statcache"
)
