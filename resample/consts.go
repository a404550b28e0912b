package resample

const (
	// Seed makes scalar resampling reproducible between runs.
	Seed uint64 = 1

	// Threshold is the sample size above which the graphs reduce their input.
	Threshold = 10000
)
