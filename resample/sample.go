package resample

import (
	"sort"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/utils"
	"golang.org/x/exp/rand"
)

// Sample draws points values from data with replacement and returns them
// sorted. The generator is seeded with Seed on every call, so identical input
// gives identical output.
func Sample(data []float64, points int) ([]float64, error) {
	if points < 1 {
		return nil, common.ErrorInvalidValue
	}

	values := utils.DropNaN(data)
	if len(values) == 0 {
		return []float64{}, nil
	}

	rng := rand.New(rand.NewSource(Seed))
	res := make([]float64, points)
	for i := range res {
		res[i] = values[rng.Intn(len(values))]
	}
	sort.Float64s(res)
	return res, nil
}

// SampleIfLarge reduces data to points values only when it holds more than
// Threshold entries.
func SampleIfLarge(data []float64, points int) ([]float64, bool, error) {
	if len(data) <= Threshold {
		return data, false, nil
	}
	res, err := Sample(data, points)
	return res, true, err
}
