package qc

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/smooth"
	"github.com/uyouii/nanopore-qc/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const YieldOverTimeName = "Yield plot through time"

// YieldSeries is the cumulative production of reads along the run, x in hours.
type YieldSeries struct {
	All  *model.DensityCurve `json:"all"`
	Pass *model.DensityCurve `json:"pass"`
	Fail *model.DensityCurve `json:"fail"`

	// Markers hold the hour at which all reads reach each of YieldPercentiles.
	Markers []model.QuantileValue `json:"markers"`
	YMax    float64               `json:"y_max"`
}

// YieldOverTime smooths the start times of all, pass and fail reads and
// accumulates each curve.
func YieldOverTime(ctx context.Context, reads *Reads) (*YieldSeries, error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", YieldOverTimeName))

	hours := utils.SecondsToHours(reads.StartTime)
	all := utils.DropNaN(hours)
	if len(all) == 0 {
		logger.Error("no start time, skip yield")
		return nil, fmt.Errorf("%s: no start time: %w", YieldOverTimeName, common.ErrorInvalidValue)
	}
	pass, fail := reads.Split(hours)

	smoother, err := smooth.NewDistributionSmoother(smooth.DefaultPoints, smooth.DefaultSigma)
	if err != nil {
		return nil, err
	}

	res := &YieldSeries{}
	for _, item := range []struct {
		dst    **model.DensityCurve
		values []float64
	}{
		{&res.All, all},
		{&res.Pass, pass},
		{&res.Fail, fail},
	} {
		curve, err := smoother.Smooth(item.values)
		if err != nil {
			logger.Error("Smooth failed", zap.Error(err))
			return nil, err
		}
		floats.CumSum(curve.Y, curve.Y)
		*item.dst = curve
	}

	res.Markers = yieldMarkers(res.All)
	res.YMax = curvesMax(res.All, res.Pass, res.Fail)
	return res, nil
}

// yieldMarkers places each share of the final yield at the first point of the
// cumulative curve closest to it.
func yieldMarkers(cumulative *model.DensityCurve) []model.QuantileValue {
	total := utils.NanMax(cumulative.Y)
	res := make([]model.QuantileValue, 0, len(YieldPercentiles))
	for _, p := range YieldPercentiles {
		target := total * p
		best, bestDist := 0, math.Inf(1)
		for i, y := range cumulative.Y {
			if dist := math.Abs(y - target); dist < bestDist {
				best, bestDist = i, dist
			}
		}
		res = append(res, model.QuantileValue{Quantile: p, Value: cumulative.X[best]})
	}
	return res
}
