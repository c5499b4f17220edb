package observability

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/kbukum/seqtrace/pipeline"
)

func stages() []pipeline.Stage[int] {
	return []pipeline.Stage[int]{
		pipeline.Transform("double", func(n int) int { return n * 2 }),
		pipeline.Predicate("mod3-filter", func(n int) bool { return n%3 == 0 }),
	}
}

func newTestObserver(t *testing.T) (*PipelineObserver, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	obs, err := NewPipelineObserverWith(tp, mp)
	if err != nil {
		t.Fatalf("unexpected error creating observer: %v", err)
	}
	return obs, recorder, reader
}

func runObserved(t *testing.T, obs *PipelineObserver) []int {
	t.Helper()
	input := []int{1, 2, 3, 4, 5}
	ctx, span := obs.StartRun(context.Background(), "run-1", pipeline.Fused, len(input))
	out, err := pipeline.Run(ctx, input, stages(), pipeline.WithObserver(obs))
	obs.EndRun(ctx, span, len(out), err)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestPipelineObserver_SpanEventsFollowEvaluationOrder(t *testing.T) {
	obs, recorder, _ := newTestObserver(t)
	runObserved(t, obs)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != SpanPipelineRun {
		t.Errorf("span name = %q", span.Name())
	}
	if span.Status().Code != codes.Ok {
		t.Errorf("span status = %v", span.Status())
	}

	wantNames := []string{
		"double", "mod3-filter", "double", "mod3-filter", "double",
		"mod3-filter", "double", "mod3-filter", "double", "mod3-filter",
	}
	events := span.Events()
	if len(events) != len(wantNames) {
		t.Fatalf("expected %d events, got %d", len(wantNames), len(events))
	}
	for i, ev := range events {
		if ev.Name != wantNames[i] {
			t.Errorf("event %d = %q, want %q", i, ev.Name, wantNames[i])
		}
		idx := attrValue(ev.Attributes, AttrIndex)
		if idx.AsInt64() != int64(i/2) {
			t.Errorf("event %d index = %d, want %d", i, idx.AsInt64(), i/2)
		}
	}

	attrs := span.Attributes()
	if attrValue(attrs, AttrRunID).AsString() != "run-1" {
		t.Error("expected run id attribute")
	}
	if attrValue(attrs, AttrResultSize).AsInt64() != 1 {
		t.Error("expected result size 1")
	}
}

func TestPipelineObserver_Counters(t *testing.T) {
	obs, _, reader := newTestObserver(t)
	runObserved(t, obs)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s: unexpected data type %T", m.Name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				totals[m.Name] += dp.Value
			}
		}
	}

	want := map[string]int64{
		MetricElementsIn:      5,
		MetricElementsPassed:  1,
		MetricElementsDropped: 4,
		MetricStageApplied:    10,
	}
	for name, v := range want {
		if totals[name] != v {
			t.Errorf("%s = %d, want %d", name, totals[name], v)
		}
	}
}

func TestPipelineObserver_EndRunError(t *testing.T) {
	obs, recorder, _ := newTestObserver(t)
	ctx, span := obs.StartRun(context.Background(), "run-2", pipeline.Lazy, 0)
	obs.EndRun(ctx, span, 0, stderrors.New("writer closed"))

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("expected 1 span, got %d", len(ended))
	}
	if ended[0].Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", ended[0].Status())
	}
	if attrValue(ended[0].Attributes(), AttrStrategy).AsString() != "lazy" {
		t.Error("expected strategy attribute")
	}
}

func TestPipelineObserver_NoopProviders(t *testing.T) {
	obs, err := NewPipelineObserverWith(tracenoop.NewTracerProvider(), noop.NewMeterProvider())
	if err != nil {
		t.Fatal(err)
	}
	runObserved(t, obs)
}

func TestNewPipelineObserver_Global(t *testing.T) {
	if _, err := NewPipelineObserver(); err != nil {
		t.Fatal(err)
	}
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("noop shutdown returned %v", err)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults("seqtrace", "development")

	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if cfg.ExportInterval != 15*time.Second {
		t.Errorf("expected ExportInterval 15s, got %v", cfg.ExportInterval)
	}
	if cfg.ServiceName != "seqtrace" || cfg.Environment != "development" {
		t.Errorf("unexpected service metadata %q %q", cfg.ServiceName, cfg.Environment)
	}
	if cfg.Enabled {
		t.Error("telemetry must be off by default")
	}

	custom := Config{Endpoint: "otel:4318", SampleRate: 0.25, ServiceName: "other"}
	custom.ApplyDefaults("seqtrace", "production")
	if custom.Endpoint != "otel:4318" || custom.SampleRate != 0.25 || custom.ServiceName != "other" {
		t.Errorf("explicit values overwritten: %+v", custom)
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(Config{ServiceName: "seqtrace", ServiceVersion: "v1", Environment: "staging"})
	if err != nil {
		t.Fatal(err)
	}
	if attrValue(res.Attributes(), AttrServiceName).AsString() != "seqtrace" {
		t.Error("expected service.name on resource")
	}
}

func attrValue(attrs []attribute.KeyValue, key string) attribute.Value {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value
		}
	}
	return attribute.Value{}
}
