// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.quarry.build/quarry/internal/adapters/cas"
	_ "go.quarry.build/quarry/internal/adapters/config"
	_ "go.quarry.build/quarry/internal/adapters/logger"
	_ "go.quarry.build/quarry/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.quarry.build/quarry/internal/app"
	_ "go.quarry.build/quarry/internal/engine/backend"
)
