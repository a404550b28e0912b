package qc

import (
	"context"
	"fmt"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/timebin"
	"github.com/uyouii/nanopore-qc/utils"
	"go.uber.org/zap"
)

const (
	LengthOverTimeName = "Read length over time"
	QScoreOverTimeName = "PHRED score over time"
	SpeedOverTimeName  = "Speed over time"
)

type OverTimeOptions struct {
	Bins  int
	Sigma float64
	// GreenZoneTarget, when set, adds a target area starting at this value.
	GreenZoneTarget *float64
	// MinMax puts the green zone ceiling on the max curve instead of q3.
	MinMax bool
}

func DefaultOverTimeOptions() OverTimeOptions {
	return OverTimeOptions{
		Bins:  timebin.DefaultTimeBins,
		Sigma: timebin.DefaultSigma,
	}
}

type OverTimeSeries struct {
	Name      string                `json:"name"`
	Band      *model.PercentileBand `json:"band"`
	GreenZone *model.GreenZone      `json:"green_zone,omitempty"`
}

func OverTime(ctx context.Context, name string, values, seconds []float64,
	opts OverTimeOptions) (*OverTimeSeries, error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", name))

	binner, err := timebin.NewTimeBinner(opts.Bins, opts.Sigma)
	if err != nil {
		logger.Error("NewTimeBinner failed", zap.Error(err), zap.Int("bins", opts.Bins),
			zap.Float64("sigma", opts.Sigma))
		return nil, err
	}

	band, err := binner.Band(values, seconds)
	if err != nil {
		logger.Error("time binning failed", zap.Error(err),
			zap.Int("values", len(values)), zap.Int("times", len(seconds)))
		return nil, err
	}
	if band.IsEmpty() {
		logger.Warn("no timed values, empty band")
	}

	res := &OverTimeSeries{Name: name, Band: band}
	if opts.GreenZoneTarget != nil {
		zone, ok := timebin.GreenZone(band, *opts.GreenZoneTarget, opts.MinMax)
		if ok {
			res.GreenZone = zone
		} else {
			logger.Warn("no ceiling for green zone, skipped")
		}
	}

	logger.Debug("over time series ready", zap.String("band", band.DebugString()))
	return res, nil
}

func LengthOverTime(ctx context.Context, reads *Reads, opts OverTimeOptions) (*OverTimeSeries, error) {
	return OverTime(ctx, LengthOverTimeName, reads.Length, reads.StartTime, opts)
}

func QScoreOverTime(ctx context.Context, reads *Reads, opts OverTimeOptions) (*OverTimeSeries, error) {
	if len(reads.QScore) == 0 {
		return nil, fmt.Errorf("%s: no quality scores: %w", QScoreOverTimeName, common.ErrorInvalidValue)
	}
	return OverTime(ctx, QScoreOverTimeName, reads.QScore, reads.StartTime, opts)
}

// SpeedOverTime follows bases per second; reads without a positive duration
// are left out.
func SpeedOverTime(ctx context.Context, reads *Reads, opts OverTimeOptions) (*OverTimeSeries, error) {
	if len(reads.Duration) == 0 {
		return nil, fmt.Errorf("%s: no read durations: %w", SpeedOverTimeName, common.ErrorInvalidValue)
	}
	return OverTime(ctx, SpeedOverTimeName, reads.Speed(), reads.StartTime, opts)
}
