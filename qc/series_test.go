package qc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/nanopore-qc/common"
	"github.com/uyouii/nanopore-qc/utils"
)

func TestBuildSeries_AllGraphs(t *testing.T) {
	t.Parallel()

	ctx := utils.WithRunID(context.Background(), "run-0001")
	reads := syntheticReads(4000, 8)

	got, err := BuildSeries(ctx, reads, []string{"barcode01", "barcode03"})
	require.NoError(t, err)

	assert.Empty(t, got.Skipped)
	assert.Len(t, got.ReadCounts, 5)
	assert.NotNil(t, got.Yield)
	assert.NotNil(t, got.LengthOverTime)
	assert.NotNil(t, got.QScoreOverTime)
	assert.NotNil(t, got.SpeedOverTime)
	assert.NotNil(t, got.LengthDistribution)
	assert.NotNil(t, got.PhredDensity)
	assert.NotNil(t, got.QualityBoxes)
	assert.NotNil(t, got.Scatter)
	assert.NotNil(t, got.ChannelOccupancy)
	assert.NotNil(t, got.BarcodeLengthBoxes)
	assert.NotNil(t, got.BarcodeQScoreBoxes)
	assert.Len(t, got.PassBarcodeCounts, 3)
	assert.Len(t, got.FailBarcodeCounts, 3)
}

func TestBuildSeries_SkipsFailingGraphs(t *testing.T) {
	t.Parallel()

	reads := syntheticReads(500, 9)
	reads.QScore = nil
	reads.Channel = nil

	got, err := BuildSeries(context.Background(), reads, []string{"barcode42"})
	require.NoError(t, err)

	assert.Len(t, got.ReadCounts, 5)
	assert.NotNil(t, got.Yield)
	assert.NotNil(t, got.LengthOverTime)
	assert.NotNil(t, got.SpeedOverTime)
	assert.NotNil(t, got.LengthDistribution)
	assert.Nil(t, got.QScoreOverTime)
	assert.Nil(t, got.ChannelOccupancy)
	assert.Nil(t, got.BarcodeLengthBoxes)

	assert.ElementsMatch(t, []string{
		QScoreOverTimeName,
		PhredDensityName,
		QualityBoxesName,
		ScatterName,
		BarcodeLengthBoxesName,
		BarcodeQScoreBoxesName,
		PassBarcodeCountsName,
		FailBarcodeCountsName,
	}, got.Skipped)
}

func TestBuildSeries_NoStartTime(t *testing.T) {
	t.Parallel()

	reads := syntheticReads(300, 12)
	reads.StartTime = nil

	got, err := BuildSeries(context.Background(), reads, nil)
	require.NoError(t, err)

	assert.Len(t, got.ReadCounts, 3)
	assert.Nil(t, got.Yield)
	assert.Contains(t, got.Skipped, YieldOverTimeName)
	assert.Contains(t, got.Skipped, LengthOverTimeName)
}

func TestBuildSeries_InvalidReads(t *testing.T) {
	t.Parallel()

	reads := &Reads{Length: []float64{1, 2, 3}, StartTime: []float64{0}}
	_, err := BuildSeries(context.Background(), reads, nil)
	require.ErrorIs(t, err, common.ErrorMismatchedLength)
}
