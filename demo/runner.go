package demo

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqtrace/errors"
	"github.com/kbukum/seqtrace/logger"
	"github.com/kbukum/seqtrace/observability"
	"github.com/kbukum/seqtrace/pipeline"
	"github.com/kbukum/seqtrace/trace"
)

// Runner executes the traced double/mod3-filter pipeline and prints the
// trace followed by the result line.
type Runner struct {
	trace     *trace.Writer
	strategy  pipeline.Strategy
	telemetry *observability.PipelineObserver
	observers []pipeline.Observer
	log       *logger.Logger
	newRunID  func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithStrategy selects the evaluation strategy. The default is pipeline.Fused.
func WithStrategy(s pipeline.Strategy) Option {
	return func(r *Runner) { r.strategy = s }
}

// WithTelemetry records a span and counters for every run.
func WithTelemetry(obs *observability.PipelineObserver) Option {
	return func(r *Runner) { r.telemetry = obs }
}

// WithObserver adds an observer notified after every stage application.
func WithObserver(obs pipeline.Observer) Option {
	return func(r *Runner) {
		if obs != nil {
			r.observers = append(r.observers, obs)
		}
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner returns a Runner printing its trace to out.
func NewRunner(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		trace:    trace.NewWriter(out),
		strategy: pipeline.Fused,
		log:      logger.Get("runner"),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates input through the double and mod3-filter stages, printing one
// trace line per stage application and then "Result: [...]". It returns the
// collected result. On failure the partial result is returned with an
// INTERNAL_ERROR carrying the run ID.
func (r *Runner) Run(ctx context.Context, input []int) ([]int, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	runID := r.newRunID()
	ctx = logger.ContextWithRunID(ctx, runID)
	log := r.log.WithContext(ctx)
	start := time.Now()

	log.Debug("run started", logger.Fields(
		logger.FieldStrategy, r.strategy.String(),
		logger.FieldCount, len(input),
	))

	opts := []pipeline.Option{
		pipeline.WithStrategy(r.strategy),
		pipeline.WithObserver(stageLogger(log)),
	}
	for _, obs := range r.observers {
		opts = append(opts, pipeline.WithObserver(obs))
	}

	var span oteltrace.Span
	if r.telemetry != nil {
		ctx, span = r.telemetry.StartRun(ctx, runID, r.strategy, len(input))
		opts = append(opts, pipeline.WithObserver(r.telemetry))
	}

	result, err := pipeline.Run(ctx, input, Stages(r.trace), opts...)
	if err == nil {
		err = trace.Result(r.trace, result)
	}

	if r.telemetry != nil {
		r.telemetry.EndRun(ctx, span, len(result), err)
	}

	if err != nil {
		log.Error("run failed", logger.ErrorFields("run", err))
		return result, errors.Internal("pipeline run failed", err).WithDetail("run_id", runID)
	}

	fields := logger.DurationFields("run", time.Since(start))
	fields[logger.FieldCount] = len(result)
	log.Debug("run finished", fields)
	return result, nil
}

// Run prints the trace and result of the fixed demonstration input to w.
func Run(ctx context.Context, w io.Writer, opts ...Option) ([]int, error) {
	return NewRunner(w, opts...).Run(ctx, Input())
}

func stageLogger(log *logger.Logger) pipeline.Observer {
	return pipeline.ObserverFunc(func(_ context.Context, e pipeline.Event) {
		log.Debug("stage applied", logger.Fields(
			logger.FieldStage, e.Stage,
			logger.FieldKind, e.Kind.String(),
			logger.FieldIndex, e.Index,
			logger.FieldDropped, e.Dropped,
		))
	})
}
