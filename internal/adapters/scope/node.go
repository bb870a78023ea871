package scope

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/core/ports"
)

// NodeID is the unique identifier for the scope store Graft node.
const NodeID graft.ID = "adapter.scope_store"

func init() {
	graft.Register(graft.Node[ports.ScopeStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScopeStore, error) {
			return NewStore(), nil
		},
	})
}
