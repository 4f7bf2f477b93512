// Package parallel provides the fork-join execution substrate shared by
// the parray packages.
//
// The substrate offers two execution modes: Do runs independent thunks
// as concurrent tasks and blocks until all of them finish (fork-join),
// and Range executes a loop of independent iterations by partitioning an
// index range across workers. Both modes synchronize only at their join
// barrier; callers must confine the side effects of thunks and
// iterations to disjoint memory regions.
package parallel

import (
	"fmt"
	"sync"

	"github.com/khaledbenmachiche/parray/internal"
)

// Workers returns the number of workers used by default to partition
// data-parallel loops: runtime.GOMAXPROCS(0), capped by SetMaxWorkers.
func Workers() int {
	return internal.Workers()
}

// SetMaxWorkers caps the worker count reported by Workers. A value of 0
// or less removes the cap. Useful on machines where the full hardware
// parallelism should not be claimed by this process.
func SetMaxWorkers(n int) {
	internal.SetMaxWorkers(n)
}

// Do receives zero or more thunks and executes them as concurrent
// tasks, returning only when all of them have terminated.
//
// Do returns no result; thunks communicate through memory they write
// into, and Do guarantees those writes are visible to the caller after
// it returns. Do is recursively composable: a thunk may itself call Do,
// which is how the sort package builds its task tree.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic
// value, annotated with the worker's stack trace.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(thunks) {
	case 2:
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			thunks[1]()
		}()
		thunks[0]()
	default:
		half := len(thunks) / 2
		go func() {
			defer func() {
				p = internal.WrapPanic(recover())
				wg.Done()
			}()
			Do(thunks[half:]...)
		}()
		Do(thunks[:half]...)
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
}

// Range receives a range and a batch count n, divides the half-open
// interval [low, high) into batches, and invokes the range function f
// for each of these batches in parallel. Every index in [low, high) is
// covered by exactly one invocation of f.
//
// If n is 0, the range is divided into Workers() batches, one contiguous
// chunk per worker.
//
// Range returns only when all batches have completed. This implicit
// barrier is the only synchronization Range performs; iterations must
// write to disjoint memory.
//
// Range panics if high < low, or if n < 0.
//
// If one or more invocations of f panic, the corresponding goroutines
// recover the panics, and Range eventually panics with the left-most
// recovered panic value, annotated with the worker's stack trace.
func Range(low, high, n int, f func(low, high int)) {
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		switch {
		case n == 1:
			f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				f(low, high)
				return
			}
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				recur(mid, high, n-half)
			}()
			recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	recur(low, high, internal.ComputeNofBatches(low, high, n))
}

// Float64RangeReduce receives a range, a batch count n, a range reducer
// reduce, and a pair reducer pair. It divides the half-open interval
// [low, high) into batches, invokes the range reducer for each batch in
// parallel, and combines the partial results pairwise with the pair
// reducer as the forked tasks join.
//
// If n is 0, the range is divided into Workers() batches, one contiguous
// chunk per worker.
//
// Each pair combination strictly happens after both of its inputs have
// been computed, but the grouping of partial results is determined by
// the fork tree, not by index order. The pair reducer must therefore be
// associative, and commutative if a deterministic result is required
// under floating-point arithmetic.
//
// Float64RangeReduce panics if high < low, or if n < 0.
//
// If one or more reducer invocations panic, the corresponding goroutines
// recover the panics, and Float64RangeReduce eventually panics with the
// left-most recovered panic value, annotated with the worker's stack
// trace.
func Float64RangeReduce(
	low, high, n int,
	reduce func(low, high int) float64,
	pair func(x, y float64) float64,
) float64 {
	var recur func(int, int, int) float64
	recur = func(low, high, n int) float64 {
		switch {
		case n == 1:
			return reduce(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return reduce(low, high)
			}
			var left, right float64
			var p interface{}
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer func() {
					p = internal.WrapPanic(recover())
					wg.Done()
				}()
				right = recur(mid, high, n-half)
			}()
			left = recur(low, mid, half)
			wg.Wait()
			if p != nil {
				panic(p)
			}
			return pair(left, right)
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
