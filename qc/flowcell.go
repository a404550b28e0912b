package qc

import (
	"gonum.org/v1/gonum/mat"
)

const (
	ChannelOccupancyName = "Channel occupancy of the flowcell"

	FlowcellRows    = 16
	FlowcellColumns = 32
)

// first channel of every flowcell column, left to right
var minionColumnSeeds = []int{
	125, 121, 117, 113, 109, 105, 101, 97,
	93, 89, 85, 81, 77, 73, 69, 65,
	61, 57, 53, 49, 45, 41, 37, 33,
	29, 25, 21, 17, 13, 9, 5, 1,
}

// MinionLayout lists the MinION channel numbers column by column, top to
// bottom. A column holds four blocks of four channels, blocks 128 apart.
func MinionLayout() []int {
	layout := make([]int, 0, FlowcellRows*FlowcellColumns)
	for _, seed := range minionColumnSeeds {
		for block := 0; block < 4; block++ {
			for row := 0; row < 4; row++ {
				layout = append(layout, seed+128*block+row)
			}
		}
	}
	return layout
}

// ChannelCounts counts reads per channel.
func ChannelCounts(reads *Reads) map[int]int {
	res := make(map[int]int)
	for _, channel := range reads.Channel {
		res[channel]++
	}
	return res
}

// ChannelOccupancy lays channel read counts out as the 16x32 MinION grid.
// Channels without reads, or outside the layout, count as zero.
func ChannelOccupancy(counts map[int]int) *mat.Dense {
	grid := mat.NewDense(FlowcellRows, FlowcellColumns, nil)
	for i, channel := range MinionLayout() {
		grid.Set(i%FlowcellRows, i/FlowcellRows, float64(counts[channel]))
	}
	return grid
}
