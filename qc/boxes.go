package qc

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/quantile"
	"github.com/uyouii/nanopore-qc/resample"
	"github.com/uyouii/nanopore-qc/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	QualityBoxesName       = "PHRED score distribution"
	BarcodeLengthBoxesName = "Read size distribution for barcodes"
	BarcodeQScoreBoxesName = "PHRED score distribution for barcodes"
	PassBarcodeCountsName  = "Pass barcoded reads distribution"
	FailBarcodeCountsName  = "Fail barcoded reads distribution"
)

type QualityBoxes struct {
	All  model.BoxSummary `json:"all"`
	Pass model.BoxSummary `json:"pass"`
	Fail model.BoxSummary `json:"fail"`

	// Resampled is set when the boxes were computed on BoxSamplePoints draws.
	Resampled bool    `json:"resampled"`
	YMin      float64 `json:"y_min"`
	YMax      float64 `json:"y_max"`
}

// QualityBoxesOf summarizes the quality scores of all, pass and fail reads.
// Above InterpolationThreshold scored reads each group is resampled first.
// The y range is shared by the three boxes.
func QualityBoxesOf(ctx context.Context, reads *Reads) (*QualityBoxes, error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", QualityBoxesName))

	all := utils.DropNaN(reads.QScore)
	if len(all) == 0 {
		logger.Error("no quality score, skip boxes")
		return nil, fmt.Errorf("%s: no quality score: %w", QualityBoxesName, common.ErrorInvalidValue)
	}
	pass, fail := reads.Split(reads.QScore)

	res := &QualityBoxes{}
	all, resampled, err := resample.SampleIfLarge(all, BoxSamplePoints)
	if err != nil {
		logger.Error("resample failed", zap.Error(err))
		return nil, err
	}
	if resampled {
		for _, group := range []*[]float64{&pass, &fail} {
			if *group, err = resample.Sample(*group, BoxSamplePoints); err != nil {
				logger.Error("resample failed", zap.Error(err))
				return nil, err
			}
		}
		res.Resampled = true
		logger.Info("quality scores resampled", zap.Int("reads", len(reads.QScore)),
			zap.Int("points", BoxSamplePoints))
	}

	res.All = quantile.BoxSummary(all)
	res.Pass = quantile.BoxSummary(pass)
	res.Fail = quantile.BoxSummary(fail)

	lower, upper := math.Inf(1), math.Inf(-1)
	for _, group := range [][]float64{all, pass, fail} {
		group = utils.DropNaN(group)
		if len(group) == 0 {
			continue
		}
		lower = math.Min(lower, floats.Min(group))
		upper = math.Max(upper, floats.Max(group))
	}
	res.YMin = lower - QualityAxisPadding
	res.YMax = upper + QualityAxisPadding
	return res, nil
}

type Metric int

const (
	MetricLength Metric = iota
	MetricQScore
)

type BarcodeBoxes struct {
	Name     string   `json:"name"`
	Barcodes []string `json:"barcodes"`

	// read type -> barcode -> summary
	Boxes map[string]map[string]model.BoxSummary `json:"boxes"`
}

// BarcodeBoxesOf summarizes metric per read type and per selected barcode.
// Lengths of zero are left out. It reports false, and nothing else, when a
// selected barcode never appears in the reads.
func BarcodeBoxesOf(ctx context.Context, reads *Reads, selection []string, metric Metric) (*BarcodeBoxes, bool) {
	name, column := BarcodeLengthBoxesName, reads.Length
	if metric == MetricQScore {
		name, column = BarcodeQScoreBoxesName, reads.QScore
	}
	logger := utils.GetLogger(ctx).With(zap.String("graph", name))

	if !reads.HasBarcodes() || len(column) != reads.Len() {
		logger.Warn("reads carry no barcode or metric column")
		return nil, false
	}
	if missing, ok := checkBarcodes(reads, selection); !ok {
		logger.Error("barcode doesn't exist", zap.String("barcode", missing))
		return nil, false
	}

	barcodes := append([]string(nil), selection...)
	sort.Strings(barcodes)
	wanted := make(map[string]bool, len(barcodes))
	for _, barcode := range barcodes {
		wanted[barcode] = true
	}

	groups := map[string]map[string][]float64{
		ReadTypePass: {},
		ReadTypeFail: {},
	}
	for i, barcode := range reads.Barcode {
		if !wanted[barcode] {
			continue
		}
		v := column[i]
		if metric == MetricLength && !(v > 0) {
			continue
		}
		readType := ReadTypePass
		if len(reads.Passes) == reads.Len() && !reads.Passes[i] {
			readType = ReadTypeFail
		}
		groups[readType][barcode] = append(groups[readType][barcode], v)
	}

	res := &BarcodeBoxes{
		Name:     name,
		Barcodes: barcodes,
		Boxes:    make(map[string]map[string]model.BoxSummary, len(groups)),
	}
	for readType, byBarcode := range groups {
		res.Boxes[readType] = make(map[string]model.BoxSummary, len(barcodes))
		for _, barcode := range barcodes {
			res.Boxes[readType][barcode] = quantile.BoxSummary(byBarcode[barcode])
		}
	}
	return res, true
}

// checkBarcodes returns the first selected barcode absent from reads.
func checkBarcodes(reads *Reads, selection []string) (string, bool) {
	present := make(map[string]bool)
	for _, barcode := range reads.Barcode {
		present[barcode] = true
	}
	for _, barcode := range selection {
		if !present[barcode] {
			return barcode, false
		}
	}
	return "", true
}

type BarcodeCount struct {
	Barcode string  `json:"barcode"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// BarcodeCounts counts pass (or fail) reads per barcode, most frequent first.
// Like BarcodeBoxesOf it reports false for an unknown selected barcode.
func BarcodeCounts(ctx context.Context, reads *Reads, selection []string, passes bool) ([]BarcodeCount, bool) {
	logger := utils.GetLogger(ctx).With(zap.Bool("passes", passes))

	if !reads.HasBarcodes() {
		logger.Warn("reads carry no barcode")
		return nil, false
	}
	if missing, ok := checkBarcodes(reads, selection); !ok {
		logger.Error("barcode doesn't exist", zap.String("barcode", missing))
		return nil, false
	}

	counts := map[string]int{}
	total := 0
	for i, barcode := range reads.Barcode {
		isPass := len(reads.Passes) != reads.Len() || reads.Passes[i]
		if isPass != passes {
			continue
		}
		counts[barcode]++
		total++
	}

	res := make([]BarcodeCount, 0, len(counts))
	for barcode, count := range counts {
		res = append(res, BarcodeCount{
			Barcode: barcode,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Barcode < res[j].Barcode
	})
	return res, true
}
