package gaussian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestFilter1D_ReflectBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sigma    float64
		expected []float64
	}{
		{name: "sigma_1", sigma: 1, expected: []float64{1.42704095, 2.06782203, 3, 3.93217797, 4.57295905}},
		{name: "sigma_4", sigma: 4, expected: []float64{2.91948343, 2.95023502, 3, 3.04976498, 3.08051657}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter1D([]float64{1, 2, 3, 4, 5}, tt.sigma)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], got[i], 1e-7, "index %d", i)
			}
		})
	}
}

func TestFilter1D_NaNPropagatesWithinRadius(t *testing.T) {
	t.Parallel()

	data := make([]float64, 20)
	for i := range data {
		data[i] = 1
	}
	data[10] = math.NaN()

	got := Filter1D(data, 1)
	radius := NewKernel(1).Radius()
	require.Equal(t, 4, radius)

	for i, v := range got {
		if i >= 10-radius && i <= 10+radius {
			assert.True(t, math.IsNaN(v), "index %d should be NaN", i)
			continue
		}
		assert.InDelta(t, 1.0, v, 1e-12, "index %d", i)
	}
}

func TestFilter1D_PreservesMass(t *testing.T) {
	t.Parallel()

	data := []float64{0, 0, 0, 10, 0, 0, 0, 0, 0, 0, 0, 0}
	got := Filter1D(data, 1)

	assert.InDelta(t, 10.0, floats.Sum(got), 1e-9)
	assert.InDelta(t, 3.98943469, got[3], 1e-7)
	assert.InDelta(t, 0.04565692, got[0], 1e-7)
}

func TestFilter1D_ZeroSigmaCopies(t *testing.T) {
	t.Parallel()

	data := []float64{3, 1, 2}
	got := Filter1D(data, 0)
	assert.Equal(t, data, got)

	got[0] = 100
	assert.InDelta(t, 3.0, data[0], 0)
}

func TestFilter1D_ShortInputs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Filter1D(nil, 1))

	got := Filter1D([]float64{7}, 2)
	require.Len(t, got, 1)
	assert.InDelta(t, 7.0, got[0], 1e-12)
}

func TestKernel_Normalized(t *testing.T) {
	t.Parallel()

	k := NewKernel(2.5)
	assert.Equal(t, 10, k.Radius())

	w := k.Weights()
	assert.Len(t, w, 21)
	assert.InDelta(t, 1.0, floats.Sum(w), 1e-12)
	assert.InDelta(t, w[0], w[20], 1e-15)
	assert.Equal(t, 10, floats.MaxIdx(w))
}

func TestReflectIndex(t *testing.T) {
	t.Parallel()

	// d c b a | a b c d | d c b a
	n := 4
	expected := map[int]int{-5: 3, -4: 3, -3: 2, -2: 1, -1: 0, 0: 0, 3: 3, 4: 3, 5: 2, 7: 0, 8: 0}
	for i, want := range expected {
		assert.Equal(t, want, reflectIndex(i, n), "i=%d", i)
	}
	assert.Equal(t, 0, reflectIndex(-3, 1))
}

func TestFilterAll(t *testing.T) {
	t.Parallel()

	series := [][]float64{{1, 2, 3, 4, 5}, {5, 5, 5}}
	got := FilterAll(series, 1)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.42704095, got[0][0], 1e-7)
	for _, v := range got[1] {
		assert.InDelta(t, 5.0, v, 1e-12)
	}
}
