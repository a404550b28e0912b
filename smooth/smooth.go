package smooth

import (
	"math"
	"sort"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/gaussian"
	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DistributionSmoother turns a sample into a smoothed count curve: a density
// histogram over points edges, scaled back to counts and Gaussian filtered.
type DistributionSmoother struct {
	points int
	sigma  float64
}

func NewDistributionSmoother(points int, sigma float64) (*DistributionSmoother, error) {
	if points < 2 || sigma < 0 || math.IsNaN(sigma) {
		return nil, common.ErrorInvalidValue
	}
	return &DistributionSmoother{
		points: points,
		sigma:  sigma,
	}, nil
}

func (s *DistributionSmoother) Points() int {
	return s.points
}

func (s *DistributionSmoother) Sigma() float64 {
	return s.sigma
}

// Smooth uses the sample's own min and max as the range.
func (s *DistributionSmoother) Smooth(values []float64) (*model.DensityCurve, error) {
	return s.SmoothInRange(values, nil)
}

// SmoothInRange bins values over clip, or over their own extent when clip is
// nil. Curves built with the same clip share X and can be overlaid. The result
// holds points-1 values, X being the right edge of each bin.
func (s *DistributionSmoother) SmoothInRange(values []float64, clip *model.Clip) (*model.DensityCurve, error) {
	data := utils.DropNaN(values)

	var lower, upper float64
	if clip != nil {
		lower, upper = clip.Lower, clip.Upper
	} else {
		if len(data) == 0 {
			return &model.DensityCurve{X: []float64{}, Y: []float64{}}, nil
		}
		lower, upper = floats.Min(data), floats.Max(data)
	}

	if !isFinite(lower) || !isFinite(upper) || lower > upper {
		return nil, common.ErrorInvalidValue
	}
	if lower == upper {
		lower, upper = lower-degenerateHalfWidth, upper+degenerateHalfWidth
	}

	edges := utils.Linspace(lower, upper, s.points)
	counts := histogram(data, edges)

	total := floats.Sum(counts)
	density := make([]float64, len(counts))
	if total > 0 {
		n := float64(len(data))
		for i, c := range counts {
			density[i] = c / total / (edges[i+1] - edges[i]) * n
		}
	}

	return &model.DensityCurve{
		X: edges[1:],
		Y: gaussian.Filter1D(density, s.sigma),
	}, nil
}

// histogram counts data in [edges[i], edges[i+1]), the last bin also taking
// values equal to the last edge. Values outside the edges are ignored. data is
// sorted in place.
func histogram(data, edges []float64) []float64 {
	sort.Float64s(data)

	lower, upper := edges[0], edges[len(edges)-1]
	begin := sort.SearchFloat64s(data, lower)
	end := sort.SearchFloat64s(data, upper)
	onUpper := sort.Search(len(data), func(i int) bool { return data[i] > upper }) - end

	counts := stat.Histogram(nil, edges, data[begin:end], nil)
	counts[len(counts)-1] += float64(onUpper)
	return counts
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
