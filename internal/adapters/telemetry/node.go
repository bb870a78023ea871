package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zancas/containment/internal/adapters/linear"
	"github.com/zancas/containment/internal/core/ports"
	"go.opentelemetry.io/otel"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			renderer, err := graft.Dep[ports.PhaseRenderer](ctx)
			if err != nil {
				return nil, err
			}
			tp := NewProvider(renderer)
			otel.SetTracerProvider(tp)
			return NewOTelTracer(tp), nil
		},
	})
}
