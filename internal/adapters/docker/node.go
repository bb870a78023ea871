package docker

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/core/ports"
)

// NodeID is the unique identifier for the image builder Graft node.
const NodeID graft.ID = "adapter.image_builder"

func init() {
	graft.Register(graft.Node[ports.ImageBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
