// Package internal provides support functionality shared by the parray
// packages. It is not meant for direct use.
package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync/atomic"
)

var maxWorkers atomic.Int64

// SetMaxWorkers caps the worker count reported by Workers. A value of 0
// or less removes the cap.
func SetMaxWorkers(n int) {
	if n < 0 {
		n = 0
	}
	maxWorkers.Store(int64(n))
}

// Workers returns the number of workers available for parallel
// execution: runtime.GOMAXPROCS(0), capped by SetMaxWorkers.
func Workers() int {
	p := runtime.GOMAXPROCS(0)
	if limit := int(maxWorkers.Load()); limit > 0 && p > limit {
		p = limit
	}
	return p
}

// ComputeNofBatches divides the size of the range (high - low) by n. If n
// is 0, the range is divided into Workers() batches, one contiguous chunk
// per worker. The result never exceeds the size of the range.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = Workers()
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
