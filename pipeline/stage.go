package pipeline

import (
	"context"
	"fmt"
)

// Kind distinguishes transform stages from predicate stages.
type Kind int

const (
	// KindTransform maps every value to a new value.
	KindTransform Kind = iota
	// KindPredicate passes or drops a value unchanged.
	KindPredicate
)

func (k Kind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindPredicate:
		return "predicate"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Hook is a side effect invoked with the value a stage receives, before the
// stage function runs.
type Hook[T any] func(ctx context.Context, v T) error

// Stage is one named step of a pipeline: a transform or a predicate plus an
// optional hook. Stages are values; WithHook returns a modified copy.
type Stage[T any] struct {
	Name string
	Kind Kind

	transform func(T) T
	predicate func(T) bool
	hook      Hook[T]
}

// Transform creates a stage that replaces each value with fn(value).
func Transform[T any](name string, fn func(T) T) Stage[T] {
	return Stage[T]{Name: name, Kind: KindTransform, transform: fn}
}

// Predicate creates a stage that keeps values for which fn returns true.
func Predicate[T any](name string, fn func(T) bool) Stage[T] {
	return Stage[T]{Name: name, Kind: KindPredicate, predicate: fn}
}

// WithHook returns a copy of the stage that calls h for every value it receives.
func (s Stage[T]) WithHook(h Hook[T]) Stage[T] {
	s.hook = h
	return s
}

// runHook invokes the hook, if any, and tags its error with the stage name.
func (s Stage[T]) runHook(ctx context.Context, v T) error {
	if s.hook == nil {
		return nil
	}
	if err := s.hook(ctx, v); err != nil {
		return fmt.Errorf("stage %s: %w", s.Name, err)
	}
	return nil
}

// evaluate applies the stage function without running the hook.
func (s Stage[T]) evaluate(v T) (T, bool) {
	if s.Kind == KindPredicate {
		return v, s.predicate(v)
	}
	return s.transform(v), true
}

// apply runs the hook and then the stage function. keep is false when a
// predicate rejects v.
func (s Stage[T]) apply(ctx context.Context, v T) (out T, keep bool, err error) {
	if err := s.runHook(ctx, v); err != nil {
		return v, false, err
	}
	out, keep = s.evaluate(v)
	return out, keep, nil
}

// Event describes one stage applied to one element.
type Event struct {
	Stage   string
	Kind    Kind
	Index   int
	Dropped bool
}

// Observer receives an Event after every stage application, in evaluation order.
type Observer interface {
	Observe(ctx context.Context, e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, e Event)

// Observe calls f(ctx, e).
func (f ObserverFunc) Observe(ctx context.Context, e Event) { f(ctx, e) }
