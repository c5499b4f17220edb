// Package pipeline provides composable, pull-based data pipeline operators
// and a stage runner with selectable evaluation order.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, or ForEach. Each operator pulls from the previous one on demand, so
// one element travels through the whole chain before the next is read.
//
// # Operators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value (tracing, logging, metrics)
//   - Take: stop after n values
//
// # Terminals
//
//   - Collect: pull everything into a slice
//   - Drain: build a Runnable that sends every value to a sink
//   - ForEach: run a sink over every value immediately
//
// All terminals check the context before each pull.
//
// # Stages
//
// A Stage is a named transform or predicate with an optional Hook that sees
// every value the stage receives. Run applies an ordered stage list to a
// slice using one of three strategies:
//
//   - Fused: a single loop; each element passes through all stages in turn
//   - Lazy: the same order, built from the iterator operators above
//   - Batch: each stage over the whole intermediate slice before the next
//
// Fused and Lazy produce identical hook and Observer order. Batch produces
// the same result with every call of stage 1 before any call of stage 2.
//
// # Usage
//
//	double := pipeline.Transform("double", func(n int) int { return n * 2 })
//	mod3 := pipeline.Predicate("mod3", func(n int) bool { return n%3 == 0 })
//	out, err := pipeline.Run(ctx, []int{1, 2, 3, 4, 5},
//	    []pipeline.Stage[int]{double, mod3})
//	// out == []int{6}
package pipeline
