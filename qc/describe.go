package qc

import (
	"math"

	"github.com/uyouii/nanopore-qc/model"
	"github.com/uyouii/nanopore-qc/quantile"
	"github.com/uyouii/nanopore-qc/utils"
	"gonum.org/v1/gonum/stat"
)

// Describe summarizes the non-NaN values for a statistics table. The standard
// deviation is the sample one and is NaN below two values; every statistic is
// NaN for an empty column.
func Describe(values []float64) model.Describe {
	data := utils.DropNaN(values)
	res := model.Describe{
		Count: len(data),
		Mean:  math.NaN(),
		Std:   math.NaN(),
	}

	ps := quantile.Percentiles(data, 0, 0.25, 0.5, 0.75, 1)
	res.Min, res.Q25, res.Median, res.Q75, res.Max = ps[0], ps[1], ps[2], ps[3], ps[4]
	if len(data) == 0 {
		return res
	}

	res.Mean = stat.Mean(data, nil)
	if len(data) > 1 {
		res.Std = stat.StdDev(data, nil)
	}
	return res
}

// Round returns d with every statistic rounded to digits decimals.
func Round(d model.Describe, digits int32) model.Describe {
	return model.Describe{
		Count:  d.Count,
		Mean:   utils.FormatFloat(d.Mean, digits),
		Std:    utils.FormatFloat(d.Std, digits),
		Min:    utils.FormatFloat(d.Min, digits),
		Q25:    utils.FormatFloat(d.Q25, digits),
		Median: utils.FormatFloat(d.Median, digits),
		Q75:    utils.FormatFloat(d.Q75, digits),
		Max:    utils.FormatFloat(d.Max, digits),
	}
}
