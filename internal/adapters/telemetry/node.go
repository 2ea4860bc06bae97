package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	adapterlogger "go.webdroid.dev/webdroid/internal/adapters/logger"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{adapterlogger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			logger, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStageTracer(logger), nil
		},
	})
}
