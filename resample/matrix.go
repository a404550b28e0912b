package resample

import (
	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// InterpolateMatrix interpolates every series of ys against xs. With axis 0
// the series are the columns of ys and the result has points rows; with axis
// 1 or -1 the series are the rows and the result has points columns. xs must
// not hold NaN.
func InterpolateMatrix(xs []float64, ys mat.Matrix, axis, points int, kind Kind) ([]float64, *mat.Dense, error) {
	if points < 1 || floats.HasNaN(xs) {
		return nil, nil, common.ErrorInvalidValue
	}

	rows, cols := ys.Dims()
	var byColumn bool
	switch axis {
	case 0:
		byColumn = true
		if len(xs) != rows {
			return nil, nil, common.ErrorMismatchedLength
		}
	case 1, -1:
		if len(xs) != cols {
			return nil, nil, common.ErrorMismatchedLength
		}
	default:
		return nil, nil, common.ErrorInvalidValue
	}

	knots, order, err := sortKnots(xs, kind)
	if err != nil {
		return nil, nil, err
	}
	grid := utils.Linspace(knots[0], knots[len(knots)-1], points)

	if byColumn {
		res := mat.NewDense(points, cols, nil)
		for j := 0; j < cols; j++ {
			series, err := evaluate(kind, knots, permute(mat.Col(nil, j, ys), order), grid)
			if err != nil {
				return nil, nil, err
			}
			res.SetCol(j, series)
		}
		return grid, res, nil
	}

	res := mat.NewDense(rows, points, nil)
	for i := 0; i < rows; i++ {
		series, err := evaluate(kind, knots, permute(mat.Row(nil, i, ys), order), grid)
		if err != nil {
			return nil, nil, err
		}
		res.SetRow(i, series)
	}
	return grid, res, nil
}
