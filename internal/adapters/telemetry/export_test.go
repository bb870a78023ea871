package telemetry

import "go.opentelemetry.io/otel/trace"

// WrapSpanForTest adapts a raw OpenTelemetry span to the port used by the app.
func WrapSpanForTest(span trace.Span) *OTelSpan {
	return &OTelSpan{span: span}
}
