package qc

import (
	"context"
	"fmt"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/quantile"
	"github.com/uyouii/nanopore-qc/smooth"
	"github.com/uyouii/nanopore-qc/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	LengthDistributionName = "Distribution of read lengths"
	PhredDensityName       = "PHRED score density distribution"

	AllReadsLabel  = "All reads"
	PassReadsLabel = "Pass reads"
	FailReadsLabel = "Fail reads"
)

type LengthDistribution struct {
	All  *model.DensityCurve `json:"all"`
	Pass *model.DensityCurve `json:"pass"`
	Fail *model.DensityCurve `json:"fail"`

	// Markers are the quartiles of all reads.
	Markers []model.QuantileValue `json:"markers"`
	XMax    float64               `json:"x_max"`
	YMax    float64               `json:"y_max"`

	Table map[string]model.Describe `json:"table"`
}

// ReadLengthDistribution smooths the length distribution of all, pass and
// fail reads, each over its own range. Reads shorter than MinReadLength are
// left out of the curves and the table.
func ReadLengthDistribution(ctx context.Context, reads *Reads) (*LengthDistribution, error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", LengthDistributionName))

	all := longReads(reads.Length)
	if len(all) == 0 {
		logger.Error("no read length, skip distribution", zap.Int("reads", reads.Len()))
		return nil, fmt.Errorf("%s: no read length: %w", LengthDistributionName, common.ErrorInvalidValue)
	}
	pass, fail := reads.Split(reads.Length)
	pass, fail = longReads(pass), longReads(fail)

	smoother, err := smooth.NewDistributionSmoother(smooth.DefaultPoints, smooth.DefaultSigma)
	if err != nil {
		return nil, err
	}

	res := &LengthDistribution{
		Markers: markers(all),
		XMax:    quantile.Percentiles(all, LengthZoomPercentile)[0],
		Table: map[string]model.Describe{
			AllReadsLabel:  Describe(all),
			PassReadsLabel: Describe(pass),
			FailReadsLabel: Describe(fail),
		},
	}
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
		*item.dst = curve
	}
	res.YMax = curvesMax(res.All, res.Pass, res.Fail)

	logger.Debug("length distribution ready", zap.Int("reads", len(all)),
		zap.Int("pass", len(pass)), zap.Int("fail", len(fail)))
	return res, nil
}

type PhredDistribution struct {
	Pass *model.DensityCurve `json:"pass"`
	Fail *model.DensityCurve `json:"fail"`

	// Markers are the quartiles of pass reads.
	Markers []model.QuantileValue `json:"markers"`
	YMax    float64               `json:"y_max"`
}

// PhredDensity smooths pass and fail quality scores over the range of all
// reads so both curves share their x axis, then scales them by the number
// of reads.
func PhredDensity(ctx context.Context, reads *Reads) (*PhredDistribution, error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", PhredDensityName))

	all := utils.DropNaN(reads.QScore)
	if len(all) == 0 {
		logger.Error("no quality score, skip density")
		return nil, fmt.Errorf("%s: no quality score: %w", PhredDensityName, common.ErrorInvalidValue)
	}
	pass, fail := reads.Split(reads.QScore)
	pass, fail = utils.DropNaN(pass), utils.DropNaN(fail)

	smoother, err := smooth.NewDistributionSmoother(smooth.DefaultPoints, smooth.DefaultSigma)
	if err != nil {
		return nil, err
	}
	clip := &model.Clip{Lower: floats.Min(all), Upper: floats.Max(all)}

	res := &PhredDistribution{Markers: markers(pass)}
	total := float64(len(all))
	for _, item := range []struct {
		dst    **model.DensityCurve
		values []float64
	}{
		{&res.Pass, pass},
		{&res.Fail, fail},
	} {
		curve, err := smoother.SmoothInRange(item.values, clip)
		if err != nil {
			logger.Error("SmoothInRange failed", zap.Error(err), zap.Any("clip", clip))
			return nil, err
		}
		floats.Scale(1/total, curve.Y)
		*item.dst = curve
	}
	res.YMax = curvesMax(res.Pass, res.Fail)

	return res, nil
}

// longReads keeps the lengths of at least MinReadLength.
func longReads(lengths []float64) []float64 {
	res := make([]float64, 0, len(lengths))
	for _, v := range lengths {
		if v >= MinReadLength {
			res = append(res, v)
		}
	}
	return res
}

func markers(values []float64) []model.QuantileValue {
	ps := quantile.Percentiles(values, MarkerPercentiles...)
	res := make([]model.QuantileValue, len(ps))
	for i, p := range MarkerPercentiles {
		res[i] = model.QuantileValue{Quantile: p, Value: ps[i]}
	}
	return res
}

// curvesMax is the highest y of the curves, NaN when none has a number.
func curvesMax(curves ...*model.DensityCurve) float64 {
	var ys []float64
	for _, c := range curves {
		ys = append(ys, c.Y...)
	}
	return utils.NanMax(ys)
}
