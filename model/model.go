package model

import "fmt"

// PercentileBand holds the smoothed min/q1/median/q3/max curves of a value
// over run time. Every slice is aligned with Edges (hours).
type PercentileBand struct {
	Edges  []float64 `json:"edges"`
	Min    []float64 `json:"min"`
	Q1     []float64 `json:"q1"`
	Median []float64 `json:"median"`
	Q3     []float64 `json:"q3"`
	Max    []float64 `json:"max"`
}

func NewPercentileBand(bins int) *PercentileBand {
	return &PercentileBand{
		Edges:  make([]float64, 0, bins),
		Min:    make([]float64, 0, bins),
		Q1:     make([]float64, 0, bins),
		Median: make([]float64, 0, bins),
		Q3:     make([]float64, 0, bins),
		Max:    make([]float64, 0, bins),
	}
}

// Curves returns the five curves in percentile order 0, 25, 50, 75, 100.
func (b *PercentileBand) Curves() [][]float64 {
	return [][]float64{b.Min, b.Q1, b.Median, b.Q3, b.Max}
}

func (b *PercentileBand) IsEmpty() bool {
	if b == nil {
		return true
	}
	return len(b.Edges) == 0
}

func (b *PercentileBand) DebugString() string {
	if b.IsEmpty() {
		return "bins: 0"
	}
	return fmt.Sprintf("bins: %v, hours: [%v, %v]", len(b.Edges), b.Edges[0], b.Edges[len(b.Edges)-1])
}

// GreenZone is the highlighted target region of an over-time graph: a filled
// area from Lower up to Upper spanning the run from Start to End hours.
type GreenZone struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}
