package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/core/ports"
)

// NodeID is the unique identifier for the project locker Graft node.
const NodeID graft.ID = "adapter.project_locker"

func init() {
	graft.Register(graft.Node[ports.ProjectLocker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLocker, error) {
			return NewLocker(), nil
		},
	})
}
