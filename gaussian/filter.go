package gaussian

// Filter1D smooths data with a Gaussian of standard deviation sigma, measured
// in samples. Boundaries are reflected. sigma <= 0 returns a copy of data.
func Filter1D(data []float64, sigma float64) []float64 {
	return NewKernel(sigma).Apply(data)
}

// FilterAll smooths every series with the same kernel.
func FilterAll(series [][]float64, sigma float64) [][]float64 {
	kernel := NewKernel(sigma)
	res := make([][]float64, len(series))
	for i, data := range series {
		res[i] = kernel.Apply(data)
	}
	return res
}
