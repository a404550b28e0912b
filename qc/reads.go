package qc

import (
	"fmt"
	"math"

	"github.com/uyouii/nanopore-qc/common"
)

// Reads holds the per-read columns of a sequencing summary. Length is the
// reference column, every other non-nil column must match its length.
type Reads struct {
	Channel   []int
	StartTime []float64 // seconds since the start of the run
	Duration  []float64 // seconds
	Length    []float64
	QScore    []float64
	Passes    []bool
	Barcode   []string
}

func (r *Reads) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Length)
}

func (r *Reads) Validate() error {
	n := r.Len()
	columns := map[string]int{
		"channel":    len(r.Channel),
		"start_time": len(r.StartTime),
		"duration":   len(r.Duration),
		"qscore":     len(r.QScore),
		"passes":     len(r.Passes),
		"barcode":    len(r.Barcode),
	}
	for name, size := range columns {
		if size != 0 && size != n {
			return fmt.Errorf("column %s has %d rows, length has %d: %w",
				name, size, n, common.ErrorMismatchedLength)
		}
	}
	return nil
}

func (r *Reads) HasBarcodes() bool {
	return len(r.Barcode) > 0 && len(r.Barcode) == r.Len()
}

// Split separates column by pass/fail status. Without status every read is a
// pass.
func (r *Reads) Split(column []float64) (pass, fail []float64) {
	if len(r.Passes) != len(column) {
		return column, nil
	}
	for i, v := range column {
		if r.Passes[i] {
			pass = append(pass, v)
		} else {
			fail = append(fail, v)
		}
	}
	return pass, fail
}

// Speed is bases per second of every read, NaN where it cannot be computed.
func (r *Reads) Speed() []float64 {
	res := make([]float64, r.Len())
	for i := range res {
		res[i] = math.NaN()
		if i >= len(r.Duration) || r.Duration[i] <= 0 {
			continue
		}
		speed := r.Length[i] / r.Duration[i]
		if !math.IsInf(speed, 0) {
			res[i] = speed
		}
	}
	return res
}
