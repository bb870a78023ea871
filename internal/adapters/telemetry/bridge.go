package telemetry

import (
	"context"
	"time"

	"github.com/zancas/containment/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	exceptionEvent      = "exception"
	exceptionMessageKey = "exception.message"
)

// PhaseError is reported to the renderer for a phase that ended with an error status.
type PhaseError struct {
	Phase   string
	Message string
}

// Error implements the error interface.
func (e *PhaseError) Error() string {
	return e.Phase + ": " + e.Message
}

// Bridge implements sdktrace.SpanProcessor, forwarding the pipeline phases
// recorded under InstrumentationName to a PhaseRenderer. Spans from other
// instrumentation, such as the container engine's HTTP client, are ignored.
type Bridge struct {
	renderer ports.PhaseRenderer
}

// NewBridge returns a new Bridge. A nil renderer discards every phase.
func NewBridge(renderer ports.PhaseRenderer) *Bridge {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &Bridge{renderer: renderer}
}

// OnStart reports the start of a phase span.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if !isPhase(s) {
		return
	}

	var parentID string
	if parent := s.Parent(); parent.IsValid() {
		parentID = parent.SpanID().String()
	}

	b.renderer.OnPhaseStart(s.SpanContext().SpanID().String(), parentID, s.Name(), s.StartTime())
}

// OnEnd reports the outcome of a phase span.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !isPhase(s) {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		err = &PhaseError{Phase: s.Name(), Message: failureMessage(s)}
	}

	b.renderer.OnPhaseComplete(s.SpanContext().SpanID().String(), s.EndTime(), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func isPhase(s sdktrace.ReadOnlySpan) bool {
	return s.SpanContext().IsValid() && s.InstrumentationScope().Name == InstrumentationName
}

// failureMessage prefers the last recorded error over the status description.
func failureMessage(s sdktrace.ReadOnlySpan) string {
	events := s.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Name != exceptionEvent {
			continue
		}
		for _, kv := range events[i].Attributes {
			if string(kv.Key) == exceptionMessageKey && kv.Value.AsString() != "" {
				return kv.Value.AsString()
			}
		}
	}
	if desc := s.Status().Description; desc != "" {
		return desc
	}
	return "phase failed"
}

type nopRenderer struct{}

func (nopRenderer) OnPhaseStart(string, string, string, time.Time) {}

func (nopRenderer) OnPhaseComplete(string, time.Time, error) {}
