package smooth

const (
	// Grid and kernel width the distribution graphs use.
	DefaultPoints = 10000
	DefaultSigma  = 5.0

	// degenerateHalfWidth widens a zero-width range on each side.
	degenerateHalfWidth = 0.5
)
