package quantile

import (
	"math"
	"sort"

	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/utils"
)

// BoxSummary precomputes the values of a box plot so the chart does not need
// the sample itself. NaNs are dropped first and an empty sample gives the zero
// summary. Fences are the usual q1-1.5*iqr and q3+1.5*iqr, clipped to the
// observed min and max because outliers are not drawn.
func BoxSummary(values []float64) model.BoxSummary {
	sorted := utils.DropNaN(values)
	if len(sorted) == 0 {
		return model.BoxSummary{}
	}
	sort.Float64s(sorted)

	n := len(sorted)
	minValue, maxValue := sorted[0], sorted[n-1]
	q1 := Percentile(sorted, 0.25)
	q3 := Percentile(sorted, 0.75)
	iqr := q3 - q1

	return model.BoxSummary{
		Min:        minValue,
		LowerFence: math.Max(q1-FenceFactor*iqr, minValue),
		Q1:         q1,
		Median:     Percentile(sorted, 0.5),
		Q3:         q3,
		UpperFence: math.Min(q3+FenceFactor*iqr, maxValue),
		Max:        maxValue,
		NotchSpan:  NotchFactor * iqr / math.Sqrt(float64(n)),
	}
}
