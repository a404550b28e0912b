package qc

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// syntheticReads builds n reads spread over 24 hours on barcodes
// barcode01..barcode03, about 80% of them passing.
func syntheticReads(n int, seed uint64) *Reads {
	rng := rand.New(rand.NewSource(seed))
	reads := &Reads{
		Channel:   make([]int, n),
		StartTime: make([]float64, n),
		Duration:  make([]float64, n),
		Length:    make([]float64, n),
		QScore:    make([]float64, n),
		Passes:    make([]bool, n),
		Barcode:   make([]string, n),
	}
	for i := 0; i < n; i++ {
		reads.Channel[i] = 1 + rng.Intn(512)
		reads.StartTime[i] = rng.Float64() * 24 * 3600
		reads.Length[i] = math.Round(math.Exp(8 + 0.6*rng.NormFloat64()))
		reads.Duration[i] = reads.Length[i] / (350 + 40*rng.NormFloat64())
		reads.QScore[i] = 11 + 3*rng.NormFloat64()
		reads.Passes[i] = reads.QScore[i] >= 8.5
		reads.Barcode[i] = fmt.Sprintf("barcode%02d", 1+rng.Intn(3))
	}
	return reads
}
