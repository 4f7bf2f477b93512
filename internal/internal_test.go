package internal

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeNofBatches(t *testing.T) {
	assert.Equal(t, 1, ComputeNofBatches(0, 0, 0))
	assert.Equal(t, 4, ComputeNofBatches(0, 100, 4))
	// Never more batches than elements.
	assert.Equal(t, 3, ComputeNofBatches(0, 3, 8))
	assert.Equal(t, Workers(), ComputeNofBatches(0, 1000000, 0))

	assert.Panics(t, func() { ComputeNofBatches(0, 10, -1) })
	assert.Panics(t, func() { ComputeNofBatches(10, 0, 0) })
}

func TestWorkersCap(t *testing.T) {
	defer SetMaxWorkers(0)

	SetMaxWorkers(1)
	assert.Equal(t, 1, Workers())
	SetMaxWorkers(0)
	assert.Equal(t, runtime.GOMAXPROCS(0), Workers())
	SetMaxWorkers(-5)
	assert.Equal(t, runtime.GOMAXPROCS(0), Workers())
}

func TestWrapPanic(t *testing.T) {
	assert.Nil(t, WrapPanic(nil))

	wrapped := WrapPanic("boom")
	s, ok := wrapped.(string)
	assert.True(t, ok)
	assert.Contains(t, s, "boom")
}
