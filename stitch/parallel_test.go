package stitch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/stitchcore/combine"
	"github.com/katalvlaran/stitchcore/frame"
	"github.com/katalvlaran/stitchcore/matrix"
	"github.com/katalvlaran/stitchcore/stitch"
	"github.com/stretchr/testify/require"
)

// StitchParallel must partition the destination into disjoint tiles and
// produce exactly the same result a serial Stitch over the same frames and
// area would (spec §5's concurrency guarantee): every cell is written by
// exactly one tile, so fan-out can never race on a shared cell.
func TestStitchParallel_MatchesSerialStitch(t *testing.T) {
	t.Parallel()

	newFrames := func() []*frame.Frame {
		f1 := buildFrame(t, []float64{0, 0}, []int{5, 4}, matrix.F64,
			[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})
		f2 := buildFrame(t, []float64{3, 2}, []int{4, 3}, matrix.F64,
			[]float64{21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32})

		return []*frame.Frame{f1, f2}
	}

	serialFrames := newFrames()
	serial, err := stitch.New(2, combine.FirstNotNaN{Default: -1}, serialFrames)
	require.NoError(t, err)
	serialDest, err := matrix.NewDense([]int{8, 6}, matrix.F64)
	require.NoError(t, err)
	require.NoError(t, serial.Stitch(context.Background(), serialDest, []int{0, 0}, []int{0, 0}, nil))

	parallelFrames := newFrames()
	parallel, err := stitch.New(2, combine.FirstNotNaN{Default: -1}, parallelFrames)
	require.NoError(t, err)
	parallelDest, err := matrix.NewDense([]int{8, 6}, matrix.F64)
	require.NoError(t, err)
	require.NoError(t, parallel.StitchParallel(context.Background(), parallelDest, []int{0, 0}, []int{3, 2}, 4, nil))

	dims := serialDest.Dimensions()
	for x := 0; x < dims[0]; x++ {
		for y := 0; y < dims[1]; y++ {
			want, err := serialDest.Get([]int{x, y})
			require.NoError(t, err)
			got, err := parallelDest.Get([]int{x, y})
			require.NoError(t, err)
			require.Equal(t, want, got, "x=%d y=%d", x, y)
		}
	}
}
