package timebin

const (
	DefaultTimeBins = 1000
	DefaultSigma    = 1.0

	// GreenZoneHeadroom lifts the green zone ceiling above the curve maximum.
	GreenZoneHeadroom = 1.05
)
