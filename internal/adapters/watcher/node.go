package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/adapters/logger"
	"github.com/zancas/containment/internal/core/ports"
)

// NodeID is the unique identifier for the scope watcher Graft node.
const NodeID graft.ID = "adapter.scope_watcher"

func init() {
	graft.Register(graft.Node[ports.ScopeWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ScopeWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log, DefaultWindow), nil
		},
	})
}
