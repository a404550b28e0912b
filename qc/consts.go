package qc

import "github.com/uyouii/nanopore-qc/resample"

const (
	ReadTypePass = "Pass"
	ReadTypeFail = "Fail"

	// InterpolationThreshold is the read count above which box and scatter
	// inputs are reduced before summarizing.
	InterpolationThreshold = resample.Threshold
	BoxSamplePoints        = 1000
	ScatterPoints          = 4000

	// QualityAxisPadding widens the quality box plot axis on both sides.
	QualityAxisPadding = 2.0
	// LengthZoomPercentile bounds the x axis of the read length distribution.
	LengthZoomPercentile = 0.99
	// MinReadLength is the shortest read kept by the read length distribution.
	MinReadLength = 10.0
)

var (
	MarkerPercentiles = []float64{0.25, 0.5, 0.75}
	// YieldPercentiles are the shares of the final yield marked on the yield curve.
	YieldPercentiles = []float64{0.5, 0.75, 0.9, 0.99}
)
