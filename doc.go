// Package parray provides a small fork-join parallel computation engine
// over flat float64 arrays: reduction under a closed set of associative
// operators, pure elementwise transformation, and in-place
// divide-and-conquer sorting.
//
// Parray provides the following subpackages:
//
// parray/parallel provides the fork-join execution substrate shared by
// all operations: concurrent task pairs with a join barrier, and
// data-parallel loops that partition integer ranges across workers.
//
// parray/array provides parallel reduction and parallel elementwise
// transformation over float64 slices.
//
// parray/sort provides an in-place parallel merge sort with a
// depth-limited fork fan-out and a sequential merge sort fallback for
// small ranges.
//
// All three operations run on a bounded number of workers derived from
// the available hardware parallelism. They synchronize only at join
// barriers; tasks and loop iterations must confine their side effects to
// disjoint memory regions.
package parray
