package array_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/khaledbenmachiche/parray/array"
)

func randomSlice(n int, seed int64, scale float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64() * scale
	}
	return data
}

func TestReduceSum(t *testing.T) {
	result, err := array.Reduce([]float64{1, 2, 3, 4, 5}, 0, array.Sum)
	require.NoError(t, err)
	assert.Equal(t, 15.0, result)
}

func TestReduceProduct(t *testing.T) {
	result, err := array.Reduce([]float64{2, 3, 4}, 1, array.Product)
	require.NoError(t, err)
	assert.Equal(t, 24.0, result)
}

func TestReduceEmptyReturnsInitial(t *testing.T) {
	for _, op := range []array.Op{array.Sum, array.Product, array.Max, array.Min} {
		result, err := array.Reduce(nil, 42, op)
		require.NoError(t, err)
		assert.Equal(t, 42.0, result, op.String())
	}
}

func TestReduceSingleElement(t *testing.T) {
	result, err := array.Reduce([]float64{7}, 3, array.Sum)
	require.NoError(t, err)
	assert.Equal(t, 10.0, result)

	result, err = array.Reduce([]float64{7}, 3, array.Min)
	require.NoError(t, err)
	assert.Equal(t, 3.0, result)
}

func TestReduceInvalidOperator(t *testing.T) {
	_, err := array.Reduce([]float64{1}, 0, array.Op(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, array.ErrInvalidOperator)
}

func TestReduceMatchesSequentialFold(t *testing.T) {
	data := randomSlice(100000, 1, 10)

	sum, err := array.Reduce(data, 0, array.Sum)
	require.NoError(t, err)
	// Parallel combination order may differ from a sequential left-fold
	// in the last bits.
	assert.InEpsilon(t, floats.Sum(data), sum, 1e-9)

	max, err := array.Reduce(data, math.Inf(-1), array.Max)
	require.NoError(t, err)
	assert.Equal(t, floats.Max(data), max)

	min, err := array.Reduce(data, math.Inf(1), array.Min)
	require.NoError(t, err)
	assert.Equal(t, floats.Min(data), min)
}

func TestReduceProductMatchesSequentialFold(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := make([]float64, 2000)
	for i := range data {
		// Stay near 1 so the product neither overflows nor underflows.
		data[i] = 0.9 + rng.Float64()*0.2
	}
	product, err := array.Reduce(data, 1, array.Product)
	require.NoError(t, err)
	assert.InEpsilon(t, floats.Prod(data), product, 1e-9)
}

func TestOpIdentity(t *testing.T) {
	assert.Equal(t, 0.0, array.Sum.Identity())
	assert.Equal(t, 1.0, array.Product.Identity())
	assert.True(t, math.IsInf(array.Max.Identity(), -1))
	assert.True(t, math.IsInf(array.Min.Identity(), 1))
}

func TestOpCombine(t *testing.T) {
	assert.Equal(t, 5.0, array.Sum.Combine(2, 3))
	assert.Equal(t, 6.0, array.Product.Combine(2, 3))
	assert.Equal(t, 3.0, array.Max.Combine(2, 3))
	assert.Equal(t, 2.0, array.Min.Combine(2, 3))
}

func TestTransformSqrt(t *testing.T) {
	in := []float64{1, 4, 9}
	out := make([]float64, len(in))
	require.NoError(t, array.Transform(in, out, math.Sqrt))
	assert.Equal(t, []float64{1, 2, 3}, out)
}

func TestTransformEveryIndex(t *testing.T) {
	in := randomSlice(10000, 3, 100)
	out := make([]float64, len(in))
	double := func(x float64) float64 { return 2 * x }
	require.NoError(t, array.Transform(in, out, double))
	for i := range in {
		require.Equal(t, double(in[i]), out[i], "index %d", i)
	}
}

func TestTransformInPlace(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	require.NoError(t, array.Transform(data, data, func(x float64) float64 { return -x }))
	assert.Equal(t, []float64{-1, -2, -3, -4}, data)
}

func TestTransformLengthMismatch(t *testing.T) {
	err := array.Transform(make([]float64, 3), make([]float64, 2), math.Sqrt)
	require.Error(t, err)
	assert.ErrorIs(t, err, array.ErrLengthMismatch)
}

func TestTransformEmpty(t *testing.T) {
	require.NoError(t, array.Transform(nil, nil, math.Sqrt))
}

func BenchmarkReduceSum(b *testing.B) {
	data := randomSlice(1000000, 4, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := array.Reduce(data, 0, array.Sum); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransformSqrt(b *testing.B) {
	data := randomSlice(1000000, 5, 100)
	out := make([]float64, len(data))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := array.Transform(data, out, math.Sqrt); err != nil {
			b.Fatal(err)
		}
	}
}
