package ports

import (
	"context"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one phase of the activation pipeline.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// PhaseRenderer displays pipeline phases as they start and finish.
type PhaseRenderer interface {
	// OnPhaseStart is called when a phase begins.
	OnPhaseStart(id, parentID, name string, start time.Time)
	// OnPhaseComplete is called when a phase ends; err is nil on success.
	OnPhaseComplete(id string, end time.Time, err error)
}
