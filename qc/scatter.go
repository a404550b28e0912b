package qc

import (
	"context"
	"sort"

	"github.com/uyouii/nanopore-qc/resample"
	"github.com/uyouii/nanopore-qc/utils"
	"go.uber.org/zap"
)

const ScatterName = "Correlation between read length and PHRED score"

type XY struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`

	// Reduced is set when the group was interpolated down to ScatterPoints.
	Reduced bool `json:"reduced"`
}

type Scatter struct {
	Pass XY `json:"pass"`
	Fail XY `json:"fail"`
}

// ScatterOf pairs read length with quality score for pass and fail reads.
// Above InterpolationThreshold pass reads, each group holding at least two
// distinct lengths is replaced by a nearest-neighbour interpolation on
// ScatterPoints evenly spaced lengths.
func ScatterOf(ctx context.Context, reads *Reads) (*Scatter, error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", ScatterName))

	passLength, failLength := reads.Split(reads.Length)
	passQScore, failQScore := reads.Split(reads.QScore)
	if len(passQScore) != len(passLength) || len(failQScore) != len(failLength) {
		logger.Error("length and quality columns differ")
		return nil, errMismatched(ScatterName)
	}

	res := &Scatter{
		Pass: XY{X: passLength, Y: passQScore},
		Fail: XY{X: failLength, Y: failQScore},
	}
	if len(passLength) <= InterpolationThreshold {
		return res, nil
	}

	for _, group := range []*XY{&res.Pass, &res.Fail} {
		xs, ys := mergeDuplicates(utils.DropNaNPairs(group.X, group.Y))
		if len(xs) < 2 {
			continue
		}
		x, y, err := resample.Interpolate(xs, ys, ScatterPoints, resample.Nearest)
		if err != nil {
			logger.Error("Interpolate failed", zap.Error(err), zap.Int("points", len(xs)))
			return nil, err
		}
		group.X, group.Y, group.Reduced = x, y, true
	}
	return res, nil
}

// mergeDuplicates sorts the pairs by x and replaces the ys of a repeated x by
// their mean, so x becomes strictly increasing.
func mergeDuplicates(xs, ys []float64) ([]float64, []float64) {
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return xs[order[i]] < xs[order[j]] })

	resX, resY := make([]float64, 0, len(xs)), make([]float64, 0, len(ys))
	count := 0
	for _, idx := range order {
		last := len(resX) - 1
		if last >= 0 && resX[last] == xs[idx] {
			count++
			resY[last] += (ys[idx] - resY[last]) / float64(count)
			continue
		}
		resX = append(resX, xs[idx])
		resY = append(resY, ys[idx])
		count = 1
	}
	return resX, resY
}
