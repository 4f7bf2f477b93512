// Package sort provides an in-place parallel merge sort for float64
// slices.
//
// The sort runs as a fork-join task tree: each task forks two subtasks
// for the halves of its range, joins, and then merges the sorted halves
// through a shared auxiliary buffer. Fork fan-out is bounded by a depth
// budget seeded from the worker count, and ranges at or below a cutoff
// length are sorted by a classic recursive sequential merge sort, since
// task-spawn overhead dominates useful work on small ranges.
package sort

import (
	"errors"

	"github.com/khaledbenmachiche/parray/parallel"
)

// DefaultCutoff is the range length at or below which a sort task runs
// the sequential fallback instead of forking. The value is empirically
// chosen; optimal cutoffs are machine-dependent, so SortWithLimits
// accepts an explicit one.
const DefaultCutoff = 1000

// ErrAuxBuffer is returned when the auxiliary merge buffer cannot be
// allocated. The input slice is left unmodified in that case, never
// partially sorted.
var ErrAuxBuffer = errors.New("sort: cannot allocate auxiliary buffer")

// Sort sorts data in place in ascending order using a parallel merge
// sort, with the fork fan-out bounded by the substrate's worker count
// and the sequential fallback engaged at DefaultCutoff elements.
func Sort(data []float64) error {
	return SortWithLimits(data, parallel.Workers(), DefaultCutoff)
}

// SortWithLimits is Sort with explicit tuning knobs.
//
// depth bounds the fork fan-out: each fork level decrements it by one,
// and a task whose depth budget reaches 0 runs sequentially regardless
// of its range size. Passing depth <= 0 therefore sorts the whole slice
// sequentially. cutoff is the sequential-fallback range length; a cutoff
// below 1 selects DefaultCutoff.
func SortWithLimits(data []float64, depth, cutoff int) error {
	if len(data) < 2 {
		return nil
	}
	if cutoff < 1 {
		cutoff = DefaultCutoff
	}
	temp, err := newTemp(len(data))
	if err != nil {
		return err
	}
	parallelMergeSort(data, temp, 0, len(data), depth, cutoff)
	return nil
}

// newTemp allocates the auxiliary buffer shared by all tasks of one sort
// call. It runs before any element of data is touched, so a failed
// allocation leaves the caller's slice intact.
func newTemp(n int) (temp []float64, err error) {
	defer func() {
		if recover() != nil {
			temp, err = nil, ErrAuxBuffer
		}
	}()
	return make([]float64, n), nil
}

// parallelMergeSort sorts data[lo:hi]. Each task owns the range [lo, hi)
// of both data and temp exclusively, so sibling tasks never write
// overlapping memory and no locking is needed. The merge strictly
// happens after both children have joined.
func parallelMergeSort(data, temp []float64, lo, hi, depth, cutoff int) {
	if depth <= 0 || hi-lo <= cutoff {
		sequentialMergeSort(data, temp, lo, hi)
		return
	}
	mid := lo + (hi-lo)/2
	parallel.Do(
		func() { parallelMergeSort(data, temp, lo, mid, depth-1, cutoff) },
		func() { parallelMergeSort(data, temp, mid, hi, depth-1, cutoff) },
	)
	merge(data, temp, lo, mid, hi)
}

// sequentialMergeSort is the classic recursive merge sort used as the
// base case of the task tree.
func sequentialMergeSort(data, temp []float64, lo, hi int) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	sequentialMergeSort(data, temp, lo, mid)
	sequentialMergeSort(data, temp, mid, hi)
	merge(data, temp, lo, mid, hi)
}

// merge merges the sorted halves data[lo:mid] and data[mid:hi] into temp
// and copies the result back. The <= comparison takes from the left half
// on ties, which keeps the merge stable.
func merge(data, temp []float64, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if data[i] <= data[j] {
			temp[k] = data[i]
			i++
		} else {
			temp[k] = data[j]
			j++
		}
		k++
	}
	for i < mid {
		temp[k] = data[i]
		i++
		k++
	}
	for j < hi {
		temp[k] = data[j]
		j++
		k++
	}
	copy(data[lo:hi], temp[lo:hi])
}
