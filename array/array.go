// Package array provides parallel reduction and parallel elementwise
// transformation over flat float64 slices, built on the fork-join
// substrate in parray/parallel.
//
// Both operations partition their input into contiguous chunks, one per
// worker. Iterations execute on arbitrary workers with no ordering, so
// transform functions must be pure and reduction operators must be
// associative and commutative.
package array

import (
	"errors"
	"fmt"
	"math"

	"github.com/khaledbenmachiche/parray/parallel"
)

// Errors reported for caller contract violations. Both are detected
// before any work is spawned; no partial results are produced.
var (
	// ErrInvalidOperator reports a reduction operator outside the closed
	// set Sum, Product, Max, Min.
	ErrInvalidOperator = errors.New("array: invalid reduction operator")

	// ErrLengthMismatch reports transform input and output slices of
	// different lengths.
	ErrLengthMismatch = errors.New("array: input and output lengths differ")
)

// Op identifies a reduction operator. The set is closed: Sum, Product,
// Max and Min. Every operator is associative and commutative over
// float64 and has an identity element, which is what makes identity-
// seeded chunk-wise parallel folding valid.
type Op int

const (
	// Sum adds all elements. Its identity is 0.
	Sum Op = iota
	// Product multiplies all elements. Its identity is 1.
	Product
	// Max selects the largest element. Its identity is -Inf.
	Max
	// Min selects the smallest element. Its identity is +Inf.
	Min
)

// Identity returns the identity element of the operator: the value e
// for which Combine(e, x) == x holds for every x.
func (op Op) Identity() float64 {
	switch op {
	case Sum:
		return 0
	case Product:
		return 1
	case Max:
		return math.Inf(-1)
	case Min:
		return math.Inf(1)
	}
	panic(fmt.Sprintf("array: identity of invalid operator %d", int(op)))
}

// Combine applies the operator to a pair of values.
func (op Op) Combine(x, y float64) float64 {
	switch op {
	case Sum:
		return x + y
	case Product:
		return x * y
	case Max:
		return math.Max(x, y)
	case Min:
		return math.Min(x, y)
	}
	panic(fmt.Sprintf("array: combine with invalid operator %d", int(op)))
}

func (op Op) valid() bool {
	return op >= Sum && op <= Min
}

func (op Op) String() string {
	switch op {
	case Sum:
		return "sum"
	case Product:
		return "product"
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Reduce combines all elements of data into a single scalar under op,
// folded together with the caller-supplied initial value.
//
// The slice is partitioned into contiguous chunks, one per worker. Each
// chunk is folded sequentially starting from the operator's identity,
// and the partial results are combined pairwise as the fork-join tree
// joins, together with initial.
//
// Under exact arithmetic the result equals the sequential left-fold over
// data. Under floating-point arithmetic it may differ in the least
// significant bits, because the combination order is not fixed. This is
// inherent to parallel reduction, not a defect; compare results with an
// epsilon bound rather than exact equality.
//
// Reduce returns ErrInvalidOperator if op is outside the closed operator
// set. An empty slice reduces to initial.
func Reduce(data []float64, initial float64, op Op) (float64, error) {
	if !op.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOperator, int(op))
	}
	if len(data) == 0 {
		return initial, nil
	}
	partial := parallel.Float64RangeReduce(
		0, len(data), 0,
		func(low, high int) float64 {
			return op.fold(data[low:high])
		},
		op.Combine,
	)
	return op.Combine(initial, partial), nil
}

// Transform applies f to every element of in and writes the result to
// the same-indexed slot of out, so that out[i] == f(in[i]) for every i.
//
// Slots are independent: execution order and worker assignment are
// unconstrained, and f must be a pure function with no shared mutable
// state between invocations. in and out may be the same slice, since
// every write is index-aligned with its read.
//
// Transform returns ErrLengthMismatch if the slices differ in length; in
// that case nothing is written.
func Transform(in, out []float64, f func(float64) float64) error {
	if len(in) != len(out) {
		return fmt.Errorf("%w: len(in)=%d, len(out)=%d", ErrLengthMismatch, len(in), len(out))
	}
	if len(in) == 0 {
		return nil
	}
	parallel.Range(0, len(in), 0, func(low, high int) {
		for i := low; i < high; i++ {
			out[i] = f(in[i])
		}
	})
	return nil
}
