package assets

import (
	"context"

	"github.com/grindlemire/graft"
	adapterlogger "go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// NodeID is the unique identifier for the asset embedder Graft node.
const NodeID graft.ID = "adapter.assets"

func init() {
	graft.Register(graft.Node[*Embedder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{adapterlogger.NodeID},
		Run: func(ctx context.Context) (*Embedder, error) {
			logger, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(logger), nil
		},
	})
}
