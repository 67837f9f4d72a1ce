package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupDisabledWithoutKey(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Setup() error = %v, want ErrDisabled", err)
	}
	if shutdown != nil {
		t.Error("Setup() returned a shutdown func while disabled")
	}
}

func TestHeadersDefaultDataset(t *testing.T) {
	h := Config{APIKey: "k"}.headers()
	if h["x-honeycomb-team"] != "k" || h["x-honeycomb-dataset"] != defaultDataset {
		t.Errorf("headers() = %v", h)
	}

	h = Config{APIKey: "k", Dataset: "dev"}.headers()
	if h["x-honeycomb-dataset"] != "dev" {
		t.Errorf("headers() dataset = %q, want dev", h["x-honeycomb-dataset"])
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("maze").Start(context.Background(), "maze.load")
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if got := ended[0].InstrumentationScope().Name; got != "mazeman/maze" {
		t.Errorf("tracer name = %q, want mazeman/maze", got)
	}
}
