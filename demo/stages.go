package demo

import (
	"golang.org/x/exp/constraints"

	"github.com/kbukum/seqtrace/pipeline"
	"github.com/kbukum/seqtrace/trace"
)

// Stage names, used in events, logs, and span events.
const (
	StageDouble = "double"
	StageMod3   = "mod3-filter"
	StageEven   = "even-filter"
	StageSquare = "square"
)

// Trace labels printed in front of each traced value.
const (
	LabelMap    = "map"
	LabelFilter = "filter"
)

// Input returns the fixed demonstration input. Every call returns a new slice.
func Input() []int {
	return []int{1, 2, 3, 4, 5}
}

// Double returns a transform stage computing 2x.
func Double[T constraints.Integer]() pipeline.Stage[T] {
	return pipeline.Transform(StageDouble, func(x T) T { return x * 2 })
}

// Square returns a transform stage computing x*x.
func Square[T constraints.Integer]() pipeline.Stage[T] {
	return pipeline.Transform(StageSquare, func(x T) T { return x * x })
}

// MultipleOf returns a predicate stage keeping values divisible by n.
// It panics if n is zero.
func MultipleOf[T constraints.Integer](name string, n T) pipeline.Stage[T] {
	if n == 0 {
		panic("demo: MultipleOf divisor must be non-zero")
	}
	return pipeline.Predicate(name, func(x T) bool { return x%n == 0 })
}

// Stages returns the traced double and mod3-filter stages writing to w.
func Stages(w *trace.Writer) []pipeline.Stage[int] {
	return []pipeline.Stage[int]{
		Double[int]().WithHook(trace.Hook[int](w, LabelMap)),
		MultipleOf[int](StageMod3, 3).WithHook(trace.Hook[int](w, LabelFilter)),
	}
}
