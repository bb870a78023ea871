package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/core/ports"
)

// NodeID is the unique identifier for the container runner Graft node.
const NodeID graft.ID = "adapter.container_runner"

func init() {
	graft.Register(graft.Node[ports.ContainerRunner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContainerRunner, error) {
			return NewRunner(), nil
		},
	})
}
