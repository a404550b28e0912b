package resample

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/nanopore-qc/common"
	"gonum.org/v1/gonum/mat"
)

func TestSample_SortedAndSized(t *testing.T) {
	t.Parallel()

	data := []float64{9, 3, math.NaN(), 7, 1, 5}
	got, err := Sample(data, 50)
	require.NoError(t, err)

	assert.Len(t, got, 50)
	assert.True(t, sort.Float64sAreSorted(got))

	allowed := map[float64]bool{9: true, 3: true, 7: true, 1: true, 5: true}
	for _, v := range got {
		assert.True(t, allowed[v], "unexpected value %v", v)
	}
}

func TestSample_SeedDeterminism(t *testing.T) {
	t.Parallel()

	data := make([]float64, 500)
	for i := range data {
		data[i] = float64(i * i % 97)
	}

	first, err := Sample(data, 100)
	require.NoError(t, err)
	second, err := Sample(data, 100)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSample_Degenerate(t *testing.T) {
	t.Parallel()

	_, err := Sample([]float64{1}, 0)
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	got, err := Sample([]float64{math.NaN()}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSampleIfLarge(t *testing.T) {
	t.Parallel()

	small := []float64{1, 2, 3}
	got, reduced, err := SampleIfLarge(small, 2)
	require.NoError(t, err)
	assert.False(t, reduced)
	assert.Equal(t, small, got)

	large := make([]float64, Threshold+1)
	got, reduced, err = SampleIfLarge(large, 1000)
	require.NoError(t, err)
	assert.True(t, reduced)
	assert.Len(t, got, 1000)
}

func TestInterpolate_Kinds(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2}
	ys := []float64{5, 6, 7}

	tests := []struct {
		kind     Kind
		expected []float64
	}{
		{kind: Linear, expected: []float64{5, 5.5, 6, 6.5, 7}},
		{kind: Nearest, expected: []float64{5, 5, 6, 6, 7}},
		{kind: Previous, expected: []float64{5, 5, 6, 6, 7}},
		{kind: Next, expected: []float64{5, 6, 6, 7, 7}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			gotX, gotY, err := Interpolate(xs, ys, 5, tt.kind)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5, 2}, gotX, 1e-12)
			assert.InDeltaSlice(t, tt.expected, gotY, 1e-9)
		})
	}
}

func TestInterpolate_UnsortedInput(t *testing.T) {
	t.Parallel()

	gotX, gotY, err := Interpolate([]float64{3, 1, 0, 2}, []float64{30, 10, 0, 20}, 7, Linear)
	require.NoError(t, err)

	require.Len(t, gotX, 7)
	for i := range gotX {
		assert.InDelta(t, 0.5*float64(i), gotX[i], 1e-12)
		assert.InDelta(t, 10*gotX[i], gotY[i], 1e-9)
	}
}

func TestInterpolate_CubicReproducesCubic(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = x*x*x - 2*x
	}

	gotX, gotY, err := Interpolate(xs, ys, 11, Cubic)
	require.NoError(t, err)
	for i, x := range gotX {
		assert.InDelta(t, x*x*x-2*x, gotY[i], 1e-8, "x=%v", x)
	}
}

func TestInterpolate_AkimaReproducesLine(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{1, 3, 5, 7, 9, 11}

	gotX, gotY, err := Interpolate(xs, ys, 21, Akima)
	require.NoError(t, err)
	for i, x := range gotX {
		assert.InDelta(t, 2*x+1, gotY[i], 1e-9, "x=%v", x)
	}
}

func TestInterpolate_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := Interpolate([]float64{1, 2}, []float64{1}, 5, Linear)
	require.ErrorIs(t, err, common.ErrorMismatchedLength)

	_, _, err = Interpolate([]float64{1, 2, 2, 3}, []float64{1, 2, 3, 4}, 5, Nearest)
	require.ErrorIs(t, err, common.ErrorNotMonotonic)

	_, _, err = Interpolate([]float64{1, 2, 3}, []float64{1, 2, 3}, 5, Cubic)
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	_, _, err = Interpolate([]float64{1, 2, 3}, []float64{1, 2, 3}, 0, Linear)
	require.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestInterpolate_EvenGrid(t *testing.T) {
	t.Parallel()

	xs := []float64{2.5, -1, 7, 3.25, 0}
	ys := []float64{1, 2, 3, 4, 5}

	gotX, gotY, err := Interpolate(xs, ys, 4000, Nearest)
	require.NoError(t, err)
	require.Len(t, gotX, 4000)
	require.Len(t, gotY, 4000)

	assert.InDelta(t, -1.0, gotX[0], 0)
	assert.InDelta(t, 7.0, gotX[3999], 0)
	step := 8.0 / 3999
	for i := 1; i < len(gotX); i++ {
		assert.InDelta(t, step, gotX[i]-gotX[i-1], 1e-9)
	}
}

func TestInterpolateMatrix_Axes(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2}
	rows := mat.NewDense(2, 3, []float64{
		0, 10, 20,
		5, 5, 5,
	})

	gotX, gotRows, err := InterpolateMatrix(xs, rows, -1, 5, Linear)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 1.5, 2}, gotX, 1e-12)

	r, c := gotRows.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 5, c)
	assert.InDeltaSlice(t, []float64{0, 5, 10, 15, 20}, mat.Row(nil, 0, gotRows), 1e-9)
	assert.InDeltaSlice(t, []float64{5, 5, 5, 5, 5}, mat.Row(nil, 1, gotRows), 1e-9)

	_, gotCols, err := InterpolateMatrix(xs, rows.T(), 0, 5, Linear)
	require.NoError(t, err)
	r, c = gotCols.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 2, c)
	assert.InDeltaSlice(t, []float64{0, 5, 10, 15, 20}, mat.Col(nil, 0, gotCols), 1e-9)

	_, _, err = InterpolateMatrix(xs, rows, 0, 5, Linear)
	require.ErrorIs(t, err, common.ErrorMismatchedLength)

	_, _, err = InterpolateMatrix(xs, rows, 2, 5, Linear)
	require.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := map[string]Kind{
		"":        Linear,
		"linear":  Linear,
		"slinear": Linear,
		"Nearest": Nearest,
		"zero":    Previous,
		"next":    Next,
		"cubic":   Cubic,
		"akima":   Akima,
	}
	for name, want := range tests {
		got, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKind("quadratic")
	require.ErrorIs(t, err, common.ErrorInvalidValue)
}
