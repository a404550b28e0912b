package gaussian

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Truncate is the number of standard deviations the kernel extends on each
// side of its center.
const Truncate = 4.0

// Kernel is a discrete, normalized Gaussian window of 2*Radius+1 taps.
type Kernel struct {
	sigma   float64
	radius  int
	weights []float64
}

func NewKernel(sigma float64) *Kernel {
	if sigma <= 0 || math.IsNaN(sigma) {
		return &Kernel{sigma: sigma, radius: 0, weights: []float64{1}}
	}

	radius := int(Truncate*sigma + 0.5)
	k := &Kernel{
		sigma:   sigma,
		radius:  radius,
		weights: make([]float64, 2*radius+1),
	}

	normal := distuv.Normal{Mu: 0, Sigma: sigma}
	for i := -radius; i <= radius; i++ {
		k.weights[i+radius] = normal.Prob(float64(i))
	}
	floats.Scale(1/floats.Sum(k.weights), k.weights)
	return k
}

func (k *Kernel) Sigma() float64 {
	return k.sigma
}

func (k *Kernel) Radius() int {
	return k.radius
}

// Weights returns a copy of the taps, centre tap at index Radius().
func (k *Kernel) Weights() []float64 {
	res := make([]float64, len(k.weights))
	copy(res, k.weights)
	return res
}

// reflectIndex maps i onto [0, n) mirroring about the array edges with the
// edge sample repeated: d c b a | a b c d | d c b a.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

// Apply correlates data with the kernel. A NaN anywhere inside a window makes
// that output NaN.
func (k *Kernel) Apply(data []float64) []float64 {
	n := len(data)
	res := make([]float64, n)
	if n == 0 {
		return res
	}
	if k.radius == 0 {
		copy(res, data)
		return res
	}

	for i := 0; i < n; i++ {
		sum := 0.0
		for j := -k.radius; j <= k.radius; j++ {
			sum += k.weights[j+k.radius] * data[reflectIndex(i+j, n)]
		}
		res[i] = sum
	}
	return res
}
