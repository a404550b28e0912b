package qc

import (
	"context"
	"fmt"

	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/utils"
	"go.uber.org/zap"
)

const (
	ReadCountsName = "Read count histogram"

	PassBarcodedReadsLabel = "Pass barcoded reads"
	FailBarcodedReadsLabel = "Fail barcoded reads"
)

type ReadCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`

	// Frequency is the percentage of all reads.
	Frequency float64 `json:"frequency"`
}

// ReadCounts counts all, pass and fail reads. With a barcode selection on
// barcoded reads, pass and fail reads carrying a selected barcode get their
// own rows.
func ReadCounts(ctx context.Context, reads *Reads, selection []string) ([]ReadCount, error) {
	logger := utils.GetLogger(ctx).With(zap.String("graph", ReadCountsName))

	total := reads.Len()
	if total == 0 {
		logger.Error("no read, skip read counts")
		return nil, fmt.Errorf("%s: no read: %w", ReadCountsName, common.ErrorInvalidValue)
	}

	wanted := make(map[string]bool, len(selection))
	for _, barcode := range selection {
		wanted[barcode] = true
	}
	barcoded := reads.HasBarcodes() && len(selection) > 0

	var pass, passBarcoded, failBarcoded int
	for i := 0; i < total; i++ {
		isPass := len(reads.Passes) != total || reads.Passes[i]
		if isPass {
			pass++
		}
		if !barcoded || !wanted[reads.Barcode[i]] {
			continue
		}
		if isPass {
			passBarcoded++
		} else {
			failBarcoded++
		}
	}

	row := func(label string, count int) ReadCount {
		return ReadCount{Label: label, Count: count, Frequency: float64(count) / float64(total) * 100}
	}
	res := []ReadCount{
		row(AllReadsLabel, total),
		row(PassReadsLabel, pass),
		row(FailReadsLabel, total-pass),
	}
	if barcoded {
		res = append(res, row(PassBarcodedReadsLabel, passBarcoded), row(FailBarcodedReadsLabel, failBarcoded))
	}

	logger.Debug("read counts ready", zap.Int("reads", total), zap.Int("pass", pass))
	return res, nil
}
