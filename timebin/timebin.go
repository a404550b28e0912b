package timebin

import (
	"math"
	"sort"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/gaussian"
	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/quantile"
	"github.com/uyouii/nanopore-qc/utils"
	"gonum.org/v1/gonum/floats"
)

// TimeBinner summarizes a per-read value over run time: reads are bucketed
// into equal-width time bins, each bin reduced to its min/q1/median/q3/max,
// and every percentile curve Gaussian smoothed across bins.
type TimeBinner struct {
	bins  int
	sigma float64
}

func NewTimeBinner(bins int, sigma float64) (*TimeBinner, error) {
	if bins < 2 || sigma < 0 || math.IsNaN(sigma) {
		return nil, common.ErrorInvalidValue
	}
	return &TimeBinner{
		bins:  bins,
		sigma: sigma,
	}, nil
}

func NewDefaultTimeBinner() *TimeBinner {
	binner, _ := NewTimeBinner(DefaultTimeBins, DefaultSigma)
	return binner
}

func (b *TimeBinner) Bins() int {
	return b.bins
}

func (b *TimeBinner) Sigma() float64 {
	return b.sigma
}

// Band bins values by their start time in seconds. Pairs with a NaN on either
// side are dropped; with none left the band is empty. A read belongs to the
// first edge at or after its time, so the first edge only collects reads at
// the very start of the run. Bins without reads are NaN before smoothing and
// the NaN spreads to every smoothed value whose window reaches it.
func (b *TimeBinner) Band(values, seconds []float64) (*model.PercentileBand, error) {
	if len(values) != len(seconds) {
		return nil, common.ErrorMismatchedLength
	}

	values, seconds = utils.DropNaNPairs(values, seconds)
	if len(values) == 0 {
		return model.NewPercentileBand(0), nil
	}
	hours := utils.SecondsToHours(seconds)

	edges := b.edges(hours)
	groups := make(map[float64][]float64, len(edges))
	for i, h := range hours {
		edge := edges[sort.SearchFloat64s(edges, h)]
		groups[edge] = append(groups[edge], values[i])
	}

	band := model.NewPercentileBand(len(edges))
	raw := make([][]float64, len(quantile.BandPercentiles))
	for _, edge := range edges {
		band.Edges = append(band.Edges, edge)

		group, ok := groups[edge]
		if !ok {
			for i := range raw {
				raw[i] = append(raw[i], math.NaN())
			}
			continue
		}
		sort.Float64s(group)
		for i, p := range quantile.BandPercentiles {
			raw[i] = append(raw[i], quantile.Percentile(group, p))
		}
	}

	curves := gaussian.FilterAll(raw, b.sigma)
	band.Min, band.Q1, band.Median, band.Q3, band.Max = curves[0], curves[1], curves[2], curves[3], curves[4]
	return band, nil
}

// edges spans [min, max] of hours with b.bins edges. When every read has the
// same time all edges are equal and each bin holds every read.
func (b *TimeBinner) edges(hours []float64) []float64 {
	return utils.Linspace(floats.Min(hours), floats.Max(hours), b.bins)
}

// GreenZone places the target area of an over-time graph: from target up to
// GreenZoneHeadroom times the highest smoothed q3 (or max when useMax is set),
// across the whole band. It reports false when the band holds no ceiling.
func GreenZone(band *model.PercentileBand, target float64, useMax bool) (*model.GreenZone, bool) {
	if band.IsEmpty() {
		return nil, false
	}

	curve := band.Q3
	if useMax {
		curve = band.Max
	}
	ceiling := utils.NanMax(curve)
	if math.IsNaN(ceiling) {
		return nil, false
	}

	return &model.GreenZone{
		Start: band.Edges[0],
		End:   band.Edges[len(band.Edges)-1],
		Lower: target,
		Upper: ceiling * GreenZoneHeadroom,
	}, true
}
