package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqtrace/pipeline"
)

const instrumentationName = "github.com/kbukum/seqtrace/observability"

// Span and attribute names.
const (
	SpanPipelineRun = "pipeline.run"

	AttrServiceName    = "service.name"
	AttrServiceVersion = "service.version"
	AttrEnvironment    = "deployment.environment"
	AttrRunID          = "run.id"
	AttrStrategy       = "pipeline.strategy"
	AttrInputSize      = "pipeline.input.size"
	AttrResultSize     = "pipeline.result.size"
	AttrStage          = "pipeline.stage"
	AttrStageKind      = "pipeline.stage.kind"
	AttrIndex          = "pipeline.element.index"
	AttrDropped        = "pipeline.element.dropped"
)

// Metric names.
const (
	MetricElementsIn      = "pipeline.elements.in"
	MetricElementsPassed  = "pipeline.elements.passed"
	MetricElementsDropped = "pipeline.elements.dropped"
	MetricStageApplied    = "pipeline.stage.applied"
)

// PipelineObserver records pipeline runs as spans and counters.
// It implements pipeline.Observer.
type PipelineObserver struct {
	tracer trace.Tracer

	elementsIn      metric.Int64Counter
	elementsPassed  metric.Int64Counter
	elementsDropped metric.Int64Counter
	stageApplied    metric.Int64Counter
}

// NewPipelineObserver creates an observer on the global providers.
func NewPipelineObserver() (*PipelineObserver, error) {
	return NewPipelineObserverWith(otel.GetTracerProvider(), otel.GetMeterProvider())
}

// NewPipelineObserverWith creates an observer on explicit providers.
func NewPipelineObserverWith(tp trace.TracerProvider, mp metric.MeterProvider) (*PipelineObserver, error) {
	meter := mp.Meter(instrumentationName)

	elementsIn, err := meter.Int64Counter(MetricElementsIn,
		metric.WithDescription("Elements read from the pipeline input"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElementsIn, err)
	}
	elementsPassed, err := meter.Int64Counter(MetricElementsPassed,
		metric.WithDescription("Elements that passed every stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElementsPassed, err)
	}
	elementsDropped, err := meter.Int64Counter(MetricElementsDropped,
		metric.WithDescription("Elements rejected by a predicate stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElementsDropped, err)
	}
	stageApplied, err := meter.Int64Counter(MetricStageApplied,
		metric.WithDescription("Stage applications by stage name"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricStageApplied, err)
	}

	return &PipelineObserver{
		tracer:          tp.Tracer(instrumentationName),
		elementsIn:      elementsIn,
		elementsPassed:  elementsPassed,
		elementsDropped: elementsDropped,
		stageApplied:    stageApplied,
	}, nil
}

// StartRun opens the run span. Events observed with the returned context are
// attached to it.
func (o *PipelineObserver) StartRun(ctx context.Context, runID string, strategy pipeline.Strategy, inputSize int) (context.Context, trace.Span) {
	ctx, span := o.tracer.Start(ctx, SpanPipelineRun, trace.WithAttributes(
		attribute.String(AttrRunID, runID),
		attribute.String(AttrStrategy, strategy.String()),
		attribute.Int(AttrInputSize, inputSize),
	))
	o.elementsIn.Add(ctx, int64(inputSize), metric.WithAttributes(attribute.String(AttrStrategy, strategy.String())))
	return ctx, span
}

// Observe implements pipeline.Observer.
func (o *PipelineObserver) Observe(ctx context.Context, e pipeline.Event) {
	attrs := []attribute.KeyValue{
		attribute.String(AttrStage, e.Stage),
		attribute.String(AttrStageKind, e.Kind.String()),
		attribute.Bool(AttrDropped, e.Dropped),
	}
	trace.SpanFromContext(ctx).AddEvent(e.Stage, trace.WithAttributes(
		append(attrs, attribute.Int(AttrIndex, e.Index))...,
	))
	o.stageApplied.Add(ctx, 1, metric.WithAttributes(attrs...))
	if e.Dropped {
		o.elementsDropped.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStage, e.Stage)))
	}
}

// EndRun records the outcome and ends span.
func (o *PipelineObserver) EndRun(ctx context.Context, span trace.Span, resultSize int, err error) {
	o.elementsPassed.Add(ctx, int64(resultSize))
	span.SetAttributes(attribute.Int(AttrResultSize, resultSize))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
