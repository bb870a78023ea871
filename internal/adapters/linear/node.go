package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/core/ports"
)

// NodeID is the unique identifier for the phase renderer Graft node.
const NodeID graft.ID = "adapter.phase_renderer"

func init() {
	graft.Register(graft.Node[ports.PhaseRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PhaseRenderer, error) {
			return NewRenderer(nil), nil
		},
	})
}
