package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	adapterconfig "go.webdroid.dev/webdroid/internal/adapters/config"
	adapterlogger "go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// RunnerNodeID is the unique identifier for the tool runner Graft node.
const RunnerNodeID graft.ID = "adapter.toolchain.runner"

// LocatorNodeID is the unique identifier for the SDK locator Graft node.
const LocatorNodeID graft.ID = "adapter.toolchain.locator"

func init() {
	graft.Register(graft.Node[ports.ToolRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{adapterconfig.NodeID, adapterlogger.NodeID},
		Run: func(ctx context.Context) (ports.ToolRunner, error) {
			cfg, err := graft.Dep[*adapterconfig.Config](ctx)
			if err != nil {
				return nil, err
			}
			logger, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(cfg, logger), nil
		},
	})

	graft.Register(graft.Node[*Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{adapterconfig.NodeID, adapterlogger.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			cfg, err := graft.Dep[*adapterconfig.Config](ctx)
			if err != nil {
				return nil, err
			}
			logger, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(cfg, logger), nil
		},
	})
}
