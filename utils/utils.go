package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const SecondsPerHour = 3600.0

func SecondsToHours(seconds []float64) []float64 {
	res := make([]float64, len(seconds))
	for i, s := range seconds {
		res[i] = s / SecondsPerHour
	}
	return res
}

// DropNaN returns a new slice holding the non-NaN values of data.
func DropNaN(data []float64) []float64 {
	res := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			res = append(res, v)
		}
	}
	return res
}

// DropNaNPairs keeps index i only when both x[i] and y[i] are numbers.
// x and y must have the same length.
func DropNaNPairs(x, y []float64) ([]float64, []float64) {
	resX, resY := make([]float64, 0, len(x)), make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		resX = append(resX, x[i])
		resY = append(resY, y[i])
	}
	return resX, resY
}

// Linspace returns num evenly spaced values over [start, stop]. The last value
// is exactly stop.
func Linspace(start, stop float64, num int) []float64 {
	if num < 2 {
		return []float64{start}
	}
	grid := floats.Span(make([]float64, num), start, stop)
	grid[num-1] = stop
	return grid
}

// NanMax is the maximum of the non-NaN values, NaN when there are none.
func NanMax(data []float64) float64 {
	res := math.NaN()
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(res) || v > res {
			res = v
		}
	}
	return res
}

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}
