package resample

import (
	"sort"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Interpolate fits y = f(x) and evaluates f at points evenly spaced x values
// over [min(xs), max(xs)]. Pairs holding a NaN are dropped and the rest are
// sorted by x. Repeated x values are a caller error reported as
// common.ErrorNotMonotonic.
func Interpolate(xs, ys []float64, points int, kind Kind) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, common.ErrorMismatchedLength
	}
	if points < 1 {
		return nil, nil, common.ErrorInvalidValue
	}

	xs, ys = utils.DropNaNPairs(xs, ys)
	knots, order, err := sortKnots(xs, kind)
	if err != nil {
		return nil, nil, err
	}

	grid := utils.Linspace(knots[0], knots[len(knots)-1], points)
	res, err := evaluate(kind, knots, permute(ys, order), grid)
	if err != nil {
		return nil, nil, err
	}
	return grid, res, nil
}

// sortKnots returns xs sorted ascending and the permutation that sorts it.
func sortKnots(xs []float64, kind Kind) ([]float64, []int, error) {
	if len(xs) < kind.minPoints() {
		return nil, nil, common.ErrorInvalidValue
	}

	knots := make([]float64, len(xs))
	copy(knots, xs)
	order := make([]int, len(xs))
	floats.Argsort(knots, order)

	for i := 1; i < len(knots); i++ {
		if knots[i] <= knots[i-1] {
			return nil, nil, common.ErrorNotMonotonic
		}
	}
	return knots, order, nil
}

func permute(data []float64, order []int) []float64 {
	res := make([]float64, len(order))
	for i, idx := range order {
		res[i] = data[idx]
	}
	return res
}

func evaluate(kind Kind, xs, ys, grid []float64) ([]float64, error) {
	predictor, err := newPredictor(kind, xs, ys)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(grid))
	for i, x := range grid {
		res[i] = predictor.Predict(x)
	}
	return res, nil
}

type predictor interface {
	Predict(x float64) float64
}

type fittablePredictor interface {
	predictor
	Fit(xs, ys []float64) error
}

func newPredictor(kind Kind, xs, ys []float64) (predictor, error) {
	var fitter fittablePredictor
	switch kind {
	case Linear:
		fitter = &interp.PiecewiseLinear{}
	case Next:
		fitter = &interp.PiecewiseConstant{}
	case Cubic:
		fitter = &interp.NotAKnotCubic{}
	case Akima:
		fitter = &interp.AkimaSpline{}
	case Nearest:
		return newNearest(xs, ys), nil
	case Previous:
		return &previous{xs: xs, ys: ys}, nil
	default:
		return nil, common.ErrorInvalidValue
	}

	if err := fitter.Fit(xs, ys); err != nil {
		return nil, err
	}
	return fitter, nil
}

// nearest picks the knot closest to x, the lower one on a tie.
type nearest struct {
	bounds []float64
	ys     []float64
}

func newNearest(xs, ys []float64) *nearest {
	bounds := make([]float64, len(xs)-1)
	for i := range bounds {
		bounds[i] = (xs[i] + xs[i+1]) / 2
	}
	return &nearest{bounds: bounds, ys: ys}
}

func (n *nearest) Predict(x float64) float64 {
	return n.ys[sort.SearchFloat64s(n.bounds, x)]
}

// previous holds the value of the last knot at or before x.
type previous struct {
	xs []float64
	ys []float64
}

func (p *previous) Predict(x float64) float64 {
	i := sort.Search(len(p.xs), func(i int) bool { return p.xs[i] > x }) - 1
	if i < 0 {
		i = 0
	}
	return p.ys[i]
}
