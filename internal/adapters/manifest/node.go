package manifest

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest writer Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Writer, error) {
			return New(), nil
		},
	})
}
