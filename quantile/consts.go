package quantile

const (
	// FenceFactor scales the IQR to place the whisker fences.
	FenceFactor = 1.5
	// NotchFactor gives the 95% confidence notch around the median.
	NotchFactor = 1.57
)

var (
	BandPercentiles = []float64{0, 0.25, 0.5, 0.75, 1}
)
