// Package telemetry provides the ports.Telemetry backends and selects one
// from the configuration.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cmini/internal/core/ports"
)

// InstrumentationName is the tracer name used for every span.
const InstrumentationName = "go.trai.ch/cmini"

// OTelTracer implements ports.Telemetry with OpenTelemetry spans.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates an OTelTracer backed by the global tracer provider.
func NewOTelTracer() *OTelTracer {
	return NewOTelTracerFrom(otel.GetTracerProvider())
}

// NewOTelTracerFrom creates an OTelTracer backed by tp.
func NewOTelTracerFrom(tp trace.TracerProvider) *OTelTracer {
	return &OTelTracer{tracer: tp.Tracer(InstrumentationName)}
}

// Record starts a span named after the unit of work.
func (t *OTelTracer) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &OTelSpan{span: span}
}

// Close does nothing; the tracer provider belongs to the caller.
func (t *OTelTracer) Close() error {
	return nil
}

// OTelSpan implements ports.Vertex on a trace.Span.
type OTelSpan struct {
	span trace.Span
}

// Log adds a log event to the span.
func (s *OTelSpan) Log(msg string) {
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", msg)))
}

// Cached marks the span as a cache hit.
func (s *OTelSpan) Cached() {
	s.span.SetAttributes(attribute.Bool("cached", true))
}

// Complete records err, if any, and ends the span.
func (s *OTelSpan) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}
