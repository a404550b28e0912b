package quantile

import (
	"math"
	"sort"

	"github.com/uyouii/nanopore-qc/utils"
)

// Percentile returns the p-quantile (p in [0, 1]) of an ascending slice by
// linear interpolation between the closest ranks, h = p*(n-1). This is the
// "type 7" estimator, numpy's default. Empty input gives NaN.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lower := int(math.Floor(h))
	if lower >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// Percentiles drops the NaNs of values and returns one quantile per p, NaN
// for all of them when nothing is left. values is not modified.
func Percentiles(values []float64, ps ...float64) []float64 {
	sorted := utils.DropNaN(values)
	sort.Float64s(sorted)

	res := make([]float64, len(ps))
	for i, p := range ps {
		res[i] = Percentile(sorted, p)
	}
	return res
}
