package qc

import (
	"context"
	"fmt"

	"github.com/uyouii/nanopore-qc/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// RunSeries gathers every plot-ready series of one sequencing run. A graph
// that could not be built is nil and listed in Skipped.
type RunSeries struct {
	ReadCounts         []ReadCount
	Yield              *YieldSeries
	LengthOverTime     *OverTimeSeries
	QScoreOverTime     *OverTimeSeries
	SpeedOverTime      *OverTimeSeries
	LengthDistribution *LengthDistribution
	PhredDensity       *PhredDistribution
	QualityBoxes       *QualityBoxes
	Scatter            *Scatter
	ChannelOccupancy   *mat.Dense

	BarcodeLengthBoxes *BarcodeBoxes
	BarcodeQScoreBoxes *BarcodeBoxes
	PassBarcodeCounts  []BarcodeCount
	FailBarcodeCounts  []BarcodeCount

	Skipped []string
}

// BuildSeries computes every graph of the run. Barcode graphs are only
// built for a non-empty selection. One failing graph never stops the others.
func BuildSeries(ctx context.Context, reads *Reads, selection []string) (*RunSeries, error) {
	logger := utils.GetLogger(ctx)

	if err := reads.Validate(); err != nil {
		logger.Error("invalid reads", zap.Error(err))
		return nil, err
	}

	res := &RunSeries{}
	opts := DefaultOverTimeOptions()

	res.build(ctx, ReadCountsName, func() (err error) {
		res.ReadCounts, err = ReadCounts(ctx, reads, selection)
		return err
	})
	res.build(ctx, YieldOverTimeName, func() (err error) {
		res.Yield, err = YieldOverTime(ctx, reads)
		return err
	})
	res.build(ctx, LengthOverTimeName, func() (err error) {
		res.LengthOverTime, err = LengthOverTime(ctx, reads, opts)
		return err
	})
	res.build(ctx, QScoreOverTimeName, func() (err error) {
		res.QScoreOverTime, err = QScoreOverTime(ctx, reads, opts)
		return err
	})
	res.build(ctx, SpeedOverTimeName, func() (err error) {
		res.SpeedOverTime, err = SpeedOverTime(ctx, reads, opts)
		return err
	})
	res.build(ctx, LengthDistributionName, func() (err error) {
		res.LengthDistribution, err = ReadLengthDistribution(ctx, reads)
		return err
	})
	res.build(ctx, PhredDensityName, func() (err error) {
		res.PhredDensity, err = PhredDensity(ctx, reads)
		return err
	})
	res.build(ctx, QualityBoxesName, func() (err error) {
		res.QualityBoxes, err = QualityBoxesOf(ctx, reads)
		return err
	})
	res.build(ctx, ScatterName, func() (err error) {
		res.Scatter, err = ScatterOf(ctx, reads)
		return err
	})
	if len(reads.Channel) > 0 {
		res.build(ctx, ChannelOccupancyName, func() error {
			res.ChannelOccupancy = ChannelOccupancy(ChannelCounts(reads))
			return nil
		})
	}

	if len(selection) > 0 {
		res.buildBarcodes(ctx, reads, selection)
	}

	logger.Info("run series built", zap.Int("reads", reads.Len()), zap.Strings("skipped", res.Skipped))
	return res, nil
}

func (s *RunSeries) buildBarcodes(ctx context.Context, reads *Reads, selection []string) {
	var ok bool
	if s.BarcodeLengthBoxes, ok = BarcodeBoxesOf(ctx, reads, selection, MetricLength); !ok {
		s.Skipped = append(s.Skipped, BarcodeLengthBoxesName)
	}
	if s.BarcodeQScoreBoxes, ok = BarcodeBoxesOf(ctx, reads, selection, MetricQScore); !ok {
		s.Skipped = append(s.Skipped, BarcodeQScoreBoxesName)
	}
	if s.PassBarcodeCounts, ok = BarcodeCounts(ctx, reads, selection, true); !ok {
		s.Skipped = append(s.Skipped, PassBarcodeCountsName)
	}
	if s.FailBarcodeCounts, ok = BarcodeCounts(ctx, reads, selection, false); !ok {
		s.Skipped = append(s.Skipped, FailBarcodeCountsName)
	}
}

// build runs one graph builder, turning an error or a panic into a skipped
// graph.
func (s *RunSeries) build(ctx context.Context, name string, fn func() error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", name))

	defer func() {
		if err := recover(); err != nil {
			logger.Error("graph builder recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()))
			s.Skipped = append(s.Skipped, name)
		}
	}()

	if err := fn(); err != nil {
		logger.Warn("graph skipped", zap.Error(err))
		s.Skipped = append(s.Skipped, name)
	}
}

func (s *RunSeries) DebugString() string {
	return fmt.Sprintf("skipped: %v", s.Skipped)
}
