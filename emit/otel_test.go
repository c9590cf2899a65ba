package emit

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTracerProvider(exporter *tracetest.InMemoryExporter) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	return tp
}

func TestOTelEmitterEmit(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newTestTracerProvider(exporter)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	emitter := NewOTelEmitter(otel.Tracer("eventrex-test"))
	emitter.Emit(Event{
		RunID:  "run-001",
		Step:   3,
		NodeID: "char_a",
		Msg:    "event_dispatched",
		Meta:   map[string]any{"clock": 2, "var": "Input"},
	})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "event_dispatched" {
		t.Errorf("span name = %q, want %q", span.Name, "event_dispatched")
	}

	attrs := attributeMap(span.Attributes)
	if got := attrs["eventrex.run_id"]; got != "run-001" {
		t.Errorf("run_id = %v, want %q", got, "run-001")
	}
	if got := attrs["eventrex.step"]; got != int64(3) {
		t.Errorf("step = %v, want %d", got, 3)
	}
	if got := attrs["eventrex.node_id"]; got != "char_a" {
		t.Errorf("node_id = %v, want %q", got, "char_a")
	}
	if got := attrs["clock"]; got != int64(2) {
		t.Errorf("clock = %v, want %d", got, 2)
	}
	if !span.EndTime.After(span.StartTime) {
		t.Error("span was not ended")
	}
}

func TestOTelEmitterEmitWithError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newTestTracerProvider(exporter)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	emitter := NewOTelEmitter(otel.Tracer("eventrex-test"))
	emitter.Emit(Event{
		Msg:  "run_failed",
		Meta: map[string]any{"error": "policy budget exhausted"},
	})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Status.Code != codes.Error {
		t.Errorf("status code = %v, want %v", span.Status.Code, codes.Error)
	}
	if span.Status.Description != "policy budget exhausted" {
		t.Errorf("status description = %q", span.Status.Description)
	}
	if len(span.Events) == 0 {
		t.Error("expected a recorded error event")
	}
}

func TestOTelEmitterEmitBatch(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newTestTracerProvider(exporter)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	emitter := NewOTelEmitter(otel.Tracer("eventrex-test"))
	events := []Event{
		{Msg: "event_dispatched"},
		{Msg: "event_dispatched"},
		{Msg: "run_completed"},
	}
	if err := emitter.EmitBatch(context.Background(), events); err != nil {
		t.Fatalf("EmitBatch failed: %v", err)
	}

	spans := exporter.GetSpans()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[2].Name != "run_completed" {
		t.Errorf("spans[2].Name = %q, want %q", spans[2].Name, "run_completed")
	}
}

func TestOTelEmitterEmitBatchEmpty(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newTestTracerProvider(exporter)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	emitter := NewOTelEmitter(otel.Tracer("eventrex-test"))
	if err := emitter.EmitBatch(context.Background(), nil); err != nil {
		t.Fatalf("EmitBatch failed on empty batch: %v", err)
	}
	if len(exporter.GetSpans()) != 0 {
		t.Errorf("expected 0 spans for an empty batch")
	}
}

func TestOTelEmitterFlush(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	emitter := NewOTelEmitter(otel.Tracer("eventrex-test"))
	emitter.Emit(Event{Msg: "event_dispatched"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := emitter.Flush(ctx); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if len(exporter.GetSpans()) != 1 {
		t.Errorf("expected 1 span after flush, got %d", len(exporter.GetSpans()))
	}
}

func TestOTelEmitterMetadataTypes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newTestTracerProvider(exporter)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	emitter := NewOTelEmitter(otel.Tracer("eventrex-test"))
	emitter.Emit(Event{
		Msg: "test_types",
		Meta: map[string]any{
			"string_val":   "hello",
			"int_val":      42,
			"float64_val":  3.14,
			"bool_val":     true,
			"duration_val": 250 * time.Millisecond,
		},
	})

	attrs := attributeMap(exporter.GetSpans()[0].Attributes)
	if got := attrs["string_val"]; got != "hello" {
		t.Errorf("string_val = %v", got)
	}
	if got := attrs["int_val"]; got != int64(42) {
		t.Errorf("int_val = %v", got)
	}
	if got := attrs["float64_val"]; got != 3.14 {
		t.Errorf("float64_val = %v", got)
	}
	if got := attrs["bool_val"]; got != true {
		t.Errorf("bool_val = %v", got)
	}
	if got := attrs["duration_val"]; got != int64(250) {
		t.Errorf("duration_val = %v, want 250ms", got)
	}
}

func TestOTelEmitterNilMeta(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := newTestTracerProvider(exporter)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	emitter := NewOTelEmitter(otel.Tracer("eventrex-test"))
	emitter.Emit(Event{RunID: "run-001", Msg: "event_dispatched", Meta: nil})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if attributeMap(spans[0].Attributes)["eventrex.run_id"] != "run-001" {
		t.Error("expected standard attributes to survive a nil Meta")
	}
}

func attributeMap(attrs []attribute.KeyValue) map[string]any {
	m := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value.AsInterface()
	}
	return m
}
