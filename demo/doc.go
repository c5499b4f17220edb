// Package demo runs the map-then-filter demonstration over [1, 2, 3, 4, 5].
//
// Each element is doubled by the "double" stage, which traces "map: <x>", and
// then tested by the "mod3-filter" stage, which traces "filter: <2x>". Both
// stages run for one element before the next element is read, so the trace
// interleaves:
//
//	map: 1
//	filter: 2
//	map: 2
//	filter: 4
//	...
//	Result: [6]
//
// CompareStrategies and TakeFirst print the contrasting batch trace and a
// short-circuiting take over a large range.
package demo
