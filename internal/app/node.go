package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.webdroid.dev/webdroid/internal/adapters/assets"
	"go.webdroid.dev/webdroid/internal/adapters/config"
	"go.webdroid.dev/webdroid/internal/adapters/keystore"
	adapterlogger "go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/adapters/manifest"
	"go.webdroid.dev/webdroid/internal/adapters/scaffold"
	"go.webdroid.dev/webdroid/internal/adapters/telemetry"
	"go.webdroid.dev/webdroid/internal/adapters/toolchain"
	"go.webdroid.dev/webdroid/internal/adapters/verify"
	"go.webdroid.dev/webdroid/internal/adapters/watcher"
	"go.webdroid.dev/webdroid/internal/core/ports"
	"go.webdroid.dev/webdroid/internal/engine/pipeline"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			adapterlogger.NodeID,
			toolchain.RunnerNodeID,
			toolchain.LocatorNodeID,
			keystore.NodeID,
			scaffold.NodeID,
			assets.NodeID,
			manifest.NodeID,
			verify.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			logger, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[*toolchain.Locator](ctx)
			if err != nil {
				return nil, err
			}
			keystoreManager, err := graft.Dep[*keystore.Manager](ctx)
			if err != nil {
				return nil, err
			}
			scaffolder, err := graft.Dep[*scaffold.Scaffolder](ctx)
			if err != nil {
				return nil, err
			}
			embedder, err := graft.Dep[*assets.Embedder](ctx)
			if err != nil {
				return nil, err
			}
			manifestWriter, err := graft.Dep[*manifest.Writer](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[*verify.Verifier](ctx)
			if err != nil {
				return nil, err
			}
			fileWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			p := pipeline.New(runner, keystoreManager, scaffolder, embedder, manifestWriter, verifier, tracer, logger)
			return &Components{
				App:    New(cfg, p, locator, keystoreManager, fileWatcher, logger),
				Logger: logger,
			}, nil
		},
	})
}
