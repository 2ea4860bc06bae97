package verify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.webdroid.dev/webdroid/internal/adapters/toolchain"
	"go.webdroid.dev/webdroid/internal/core/ports"
)

// NodeID is the unique identifier for the verifier Graft node.
const NodeID graft.ID = "adapter.verify"

func init() {
	graft.Register(graft.Node[*Verifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{toolchain.RunnerNodeID},
		Run: func(ctx context.Context) (*Verifier, error) {
			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}
