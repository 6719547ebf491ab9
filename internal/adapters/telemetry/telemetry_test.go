package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cmini/internal/adapters/config"
	"go.trai.ch/cmini/internal/adapters/telemetry"
	"go.trai.ch/cmini/internal/adapters/telemetry/progrock"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return sr, telemetry.NewOTelTracerFrom(tp)
}

func TestOTelTracer_Record(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, v := tracer.Record(t.Context(), "semimak")
	v.Log("recomputed")
	v.Cached()
	v.Complete(nil)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "semimak", span.Name())
	assert.Equal(t, codes.Unset, span.Status().Code)

	require.Len(t, span.Events(), 1)
	assert.Equal(t, "log", span.Events()[0].Name)

	var cached bool
	for _, attr := range span.Attributes() {
		if attr.Key == "cached" {
			cached = attr.Value.AsBool()
		}
	}
	assert.True(t, cached)
	require.NoError(t, tracer.Close())
}

func TestOTelTracer_Failure(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, v := tracer.Record(t.Context(), "dvorak")
	v.Complete(errors.New("corpus is empty"))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "corpus is empty", spans[0].Status().Description)
}

func TestNoop(t *testing.T) {
	n := telemetry.NewNoop()
	ctx, v := n.Record(t.Context(), "anything")
	assert.Equal(t, t.Context(), ctx)
	v.Log("ignored")
	v.Cached()
	v.Complete(errors.New("ignored"))
	require.NoError(t, n.Close())
}

func TestNew_Backends(t *testing.T) {
	assert.IsType(t, &progrock.Recorder{}, telemetry.New(config.TelemetryProgrock))
	assert.IsType(t, &progrock.Recorder{}, telemetry.New(""))
	assert.IsType(t, &telemetry.OTelTracer{}, telemetry.New(config.TelemetryOTel))
	assert.IsType(t, &telemetry.Noop{}, telemetry.New(config.TelemetryNone))
}
