// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wl/internal/adapters/cas"
	_ "go.trai.ch/wl/internal/adapters/config"
	_ "go.trai.ch/wl/internal/adapters/detector"
	_ "go.trai.ch/wl/internal/adapters/fs"
	_ "go.trai.ch/wl/internal/adapters/logger"
	_ "go.trai.ch/wl/internal/adapters/process"
	_ "go.trai.ch/wl/internal/adapters/runtimes"
	_ "go.trai.ch/wl/internal/adapters/samples"
	_ "go.trai.ch/wl/internal/adapters/source"
	_ "go.trai.ch/wl/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/wl/internal/app"
	_ "go.trai.ch/wl/internal/engine/scheduler"
)
