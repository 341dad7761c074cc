// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/assetstamp/stamp/internal/adapters/buildinfo"
	_ "github.com/assetstamp/stamp/internal/adapters/config"
	_ "github.com/assetstamp/stamp/internal/adapters/fs"
	_ "github.com/assetstamp/stamp/internal/adapters/logger"
	_ "github.com/assetstamp/stamp/internal/adapters/manifest"
	_ "github.com/assetstamp/stamp/internal/adapters/telemetry/progrock"
	_ "github.com/assetstamp/stamp/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/assetstamp/stamp/internal/app"
	_ "github.com/assetstamp/stamp/internal/engine/stamper"
)
