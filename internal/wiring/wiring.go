// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.webdroid.dev/webdroid/internal/adapters/assets"
	_ "go.webdroid.dev/webdroid/internal/adapters/config"
	_ "go.webdroid.dev/webdroid/internal/adapters/keystore"
	_ "go.webdroid.dev/webdroid/internal/adapters/logger"
	_ "go.webdroid.dev/webdroid/internal/adapters/manifest"
	_ "go.webdroid.dev/webdroid/internal/adapters/scaffold"
	_ "go.webdroid.dev/webdroid/internal/adapters/telemetry"
	_ "go.webdroid.dev/webdroid/internal/adapters/toolchain"
	_ "go.webdroid.dev/webdroid/internal/adapters/verify"
	_ "go.webdroid.dev/webdroid/internal/adapters/watcher"
	// Register app nodes.
	_ "go.webdroid.dev/webdroid/internal/app"
)
