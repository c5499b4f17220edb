package demo

import (
	"context"
	"io"

	"github.com/kbukum/seqtrace/pipeline"
	"github.com/kbukum/seqtrace/trace"
)

// Section headers and markers printed by CompareStrategies and TakeFirst.
const (
	HeaderBatch     = "=== batch ==="
	HeaderLazy      = "=== lazy ==="
	HeaderTake      = "=== take ==="
	MarkerBatchDone = "end of pipeline (batch)"
	MarkerTerminal  = "before terminal"
)

// CompareStrategies prints two traces of the same stages over input. The batch
// section applies each stage to every element before the next stage starts,
// then prints MarkerBatchDone. The lazy section builds the chain, prints
// MarkerTerminal, and only then drains the chain with pipeline.ForEach, so its
// stage lines follow the marker and interleave per element.
func CompareStrategies(ctx context.Context, w io.Writer, input []int) error {
	if err := ValidateInput(input); err != nil {
		return err
	}
	tw := trace.NewWriter(w)

	if err := tw.Marker(HeaderBatch); err != nil {
		return err
	}
	batch, err := pipeline.Run(ctx, input, Stages(tw), pipeline.WithStrategy(pipeline.Batch))
	if err != nil {
		return err
	}
	if err := tw.Marker(MarkerBatchDone); err != nil {
		return err
	}
	if err := trace.Result(tw, batch); err != nil {
		return err
	}

	if err := tw.Marker(HeaderLazy); err != nil {
		return err
	}
	chained := pipeline.Chain(pipeline.FromSlice(input), Stages(tw))
	if err := tw.Marker(MarkerTerminal); err != nil {
		return err
	}
	lazy := []int{}
	err = pipeline.ForEach(ctx, chained, func(_ context.Context, v int) error {
		lazy = append(lazy, v)
		return nil
	})
	if err != nil {
		return err
	}
	return trace.Result(tw, lazy)
}

// TakeFirst keeps the even numbers of 1..limit, squares them, and stops after
// n results. Only the elements needed to produce n results are pulled from
// the range, which the trace makes visible.
func TakeFirst(ctx context.Context, w io.Writer, limit, n int) ([]int, error) {
	tw := trace.NewWriter(w)
	stages := []pipeline.Stage[int]{
		MultipleOf[int](StageEven, 2).WithHook(trace.Hook[int](tw, LabelFilter)),
		Square[int]().WithHook(trace.Hook[int](tw, LabelMap)),
	}

	taken := pipeline.Take(pipeline.Chain(pipeline.Range(1, limit), stages), n)
	result, err := pipeline.Collect(ctx, taken)
	if err != nil {
		return result, err
	}
	return result, trace.Result(tw, result)
}
