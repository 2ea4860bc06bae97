package keystore

import (
	"context"
	"os/exec"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"
	adapterconfig "go.webdroid.dev/webdroid/internal/adapters/config"
	adapterlogger "go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/adapters/toolchain"
	"go.webdroid.dev/webdroid/internal/core/domain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// NodeID is the unique identifier for the keystore Graft node.
const NodeID graft.ID = "adapter.keystore"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{adapterconfig.NodeID, adapterlogger.NodeID, toolchain.RunnerNodeID},
		Run: func(ctx context.Context) (*Manager, error) {
			cfg, err := graft.Dep[*adapterconfig.Config](ctx)
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
			// keytool lives in the JDK, not the SDK, so keystore commands
			// work without an installed Android SDK.
			keytool, err := exec.LookPath("keytool")
			if err != nil {
				return nil, zerr.Wrap(domain.ErrToolUnavailable, "keytool not found on PATH")
			}
			return NewManager(cfg, runner, logger, keytool), nil
		},
	})
}
