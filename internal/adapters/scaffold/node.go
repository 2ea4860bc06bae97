package scaffold

import (
	"context"

	"github.com/grindlemire/graft"
	adapterconfig "go.webdroid.dev/webdroid/internal/adapters/config"
)

// NodeID is the unique identifier for the scaffold Graft node.
const NodeID graft.ID = "adapter.scaffold"

func init() {
	graft.Register(graft.Node[*Scaffolder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{adapterconfig.NodeID},
		Run: func(ctx context.Context) (*Scaffolder, error) {
			cfg, err := graft.Dep[*adapterconfig.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg), nil
		},
	})
}
