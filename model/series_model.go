package model

// Clip is an explicit value range. Curves smoothed with the same Clip share
// their x axis.
type Clip struct {
	Lower float64
	Upper float64
}

// DensityCurve is a smoothed histogram, X holds the right edge of each bin.
type DensityCurve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func (c *DensityCurve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.X)
}

// BoxSummary carries what a box plot needs without keeping the sample.
// Fences never extend past Min and Max.
type BoxSummary struct {
	Min        float64 `json:"min"`
	LowerFence float64 `json:"lowerfence"`
	Q1         float64 `json:"q1"`
	Median     float64 `json:"median"`
	Q3         float64 `json:"q3"`
	UpperFence float64 `json:"upperfence"`
	Max        float64 `json:"max"`
	NotchSpan  float64 `json:"notchspan"`
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

// Describe is one column of a statistics table: count, mean, sample standard
// deviation, min, quartiles and max.
type Describe struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"25%"`
	Median float64 `json:"median"`
	Q75    float64 `json:"75%"`
	Max    float64 `json:"max"`
}
