package pipeline

import (
	"context"
	"fmt"
)

// Strategy selects how Run orders stage applications.
type Strategy int

const (
	// Fused threads each element through every stage before touching the next
	// element, in a single loop.
	Fused Strategy = iota
	// Lazy builds a pull-based iterator chain and collects it. The evaluation
	// order is the same as Fused.
	Lazy
	// Batch applies each stage to the whole intermediate slice before the
	// next stage starts.
	Batch
)

func (s Strategy) String() string {
	switch s {
	case Fused:
		return "fused"
	case Lazy:
		return "lazy"
	case Batch:
		return "batch"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

type options struct {
	strategy  Strategy
	observers []Observer
}

// Option configures Run and Chain.
type Option func(*options)

// WithStrategy sets the evaluation strategy. The default is Fused.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithObserver registers an observer. Observers are called in registration order.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func resolveOptions(opts []Option) *options {
	o := &options{strategy: Fused}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) notify(ctx context.Context, e Event) {
	for _, obs := range o.observers {
		obs.Observe(ctx, e)
	}
}

// Run applies stages, in order, to every element of input and returns the
// surviving values in input order. A predicate that rejects an element stops
// that element from reaching later stages.
//
// Hook errors abort the run. The context is checked once per element; on
// cancellation or error the values that already passed every stage are
// returned with the error.
func Run[T any](ctx context.Context, input []T, stages []Stage[T], opts ...Option) ([]T, error) {
	o := resolveOptions(opts)
	switch o.strategy {
	case Fused:
		return runFused(ctx, input, stages, o)
	case Lazy:
		return Collect(ctx, chain(FromSlice(input), stages, o))
	case Batch:
		return runBatch(ctx, input, stages, o)
	default:
		return nil, fmt.Errorf("pipeline: unknown strategy %s", o.strategy)
	}
}

func runFused[T any](ctx context.Context, input []T, stages []Stage[T], o *options) ([]T, error) {
	result := make([]T, 0, len(input))
	for i, v := range input {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		keep := true
		for _, s := range stages {
			var err error
			v, keep, err = s.apply(ctx, v)
			if err != nil {
				return result, err
			}
			o.notify(ctx, Event{Stage: s.Name, Kind: s.Kind, Index: i, Dropped: !keep})
			if !keep {
				break
			}
		}
		if keep {
			result = append(result, v)
		}
	}
	return result, nil
}

func runBatch[T any](ctx context.Context, input []T, stages []Stage[T], o *options) ([]T, error) {
	current := make([]item[T], len(input))
	for i, v := range input {
		current[i] = item[T]{index: i, value: v}
	}
	// Only the last stage's output has passed every stage.
	partial := func(stage int, next []item[T]) []T {
		if stage == len(stages)-1 {
			return values(next)
		}
		return []T{}
	}
	for si, s := range stages {
		next := make([]item[T], 0, len(current))
		for _, it := range current {
			if err := ctx.Err(); err != nil {
				return partial(si, next), err
			}
			out, keep, err := s.apply(ctx, it.value)
			if err != nil {
				return partial(si, next), err
			}
			o.notify(ctx, Event{Stage: s.Name, Kind: s.Kind, Index: it.index, Dropped: !keep})
			if keep {
				next = append(next, item[T]{index: it.index, value: out})
			}
		}
		current = next
	}
	return values(current), nil
}

// Chain attaches stages to p as lazy operators. Nothing runs until the
// returned pipeline is pulled; each pulled element passes through every stage
// before the next element is read from p, and the context is checked before
// each read. Strategy options are ignored.
func Chain[T any](p *Pipeline[T], stages []Stage[T], opts ...Option) *Pipeline[T] {
	return chain(p, stages, resolveOptions(opts))
}

// item carries an element with its position in the source.
type item[T any] struct {
	index int
	value T
}

func values[T any](items []item[T]) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.value
	}
	return out
}

func chain[T any](p *Pipeline[T], stages []Stage[T], o *options) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			index := -1
			indexed := Map(p, func(ctx context.Context, v T) (item[T], error) {
				if err := ctx.Err(); err != nil {
					return item[T]{}, err
				}
				index++
				return item[T]{index: index, value: v}, nil
			})
			for _, s := range stages {
				indexed = lazyStage(ctx, indexed, s, o)
			}
			out := Map(indexed, func(_ context.Context, it item[T]) (T, error) {
				return it.value, nil
			})
			return out.create(ctx)
		},
	}
}

func lazyStage[T any](ctx context.Context, p *Pipeline[item[T]], s Stage[T], o *options) *Pipeline[item[T]] {
	if s.hook != nil {
		p = Tap(p, func(ctx context.Context, it item[T]) error {
			return s.runHook(ctx, it.value)
		})
	}
	if s.Kind == KindPredicate {
		// Filter has no context parameter; events use the one the chain was created with.
		return Filter(p, func(it item[T]) bool {
			_, keep := s.evaluate(it.value)
			o.notify(ctx, Event{Stage: s.Name, Kind: s.Kind, Index: it.index, Dropped: !keep})
			return keep
		})
	}
	return Map(p, func(ctx context.Context, it item[T]) (item[T], error) {
		out, _ := s.evaluate(it.value)
		o.notify(ctx, Event{Stage: s.Name, Kind: s.Kind, Index: it.index})
		return item[T]{index: it.index, value: out}, nil
	})
}
