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

// S1 (empty): frames = ∅, method = average_not_nan(default=42), area =
// [(0,0),(3,2)]. Expected 3x2 (x,y) output = all 42.
func TestScenario_S1_Empty(t *testing.T) {
	t.Parallel()

	s, err := stitch.New(2, combine.AverageNotNaN{Default: 42}, nil)
	require.NoError(t, err)

	dest, err := matrix.NewDense([]int{3, 2}, matrix.F64)
	require.NoError(t, err)

	require.NoError(t, s.Stitch(context.Background(), dest, []int{0, 0}, []int{0, 0}, nil))

	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			v, err := dest.Get([]int{x, y})
			require.NoError(t, err)
			require.Equal(t, 42.0, v)
		}
	}
}

// S2 (single shift): one frame [[10,20,30],[40,50,60]] (x-major rows) at
// position shift (1,1) in a 4x3 destination with default 0 and method
// first_not_nan(0).
func TestScenario_S2_SingleShift(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense([]int{3, 2}, matrix.F64) // dims = (x:3, y:2)
	require.NoError(t, err)
	vals := map[[2]int]float64{
		{0, 0}: 10, {1, 0}: 20, {2, 0}: 30,
		{0, 1}: 40, {1, 1}: 50, {2, 1}: 60,
	}
	for idx, v := range vals {
		require.NoError(t, m.Set([]int{idx[0], idx[1]}, v))
	}
	pos, err := frame.NewShiftPosition([]float64{1, 1}, []int{3, 2})
	require.NoError(t, err)
	f, err := frame.New(m, pos)
	require.NoError(t, err)

	s, err := stitch.New(2, combine.FirstNotNaN{Default: 0}, []*frame.Frame{f})
	require.NoError(t, err)

	dest, err := matrix.NewDense([]int{4, 3}, matrix.F64) // dims = (x:4, y:3)
	require.NoError(t, err)
	require.NoError(t, s.Stitch(context.Background(), dest, []int{0, 0}, []int{0, 0}, nil))

	expected := map[[2]int]float64{
		{0, 0}: 0, {1, 0}: 0, {2, 0}: 0, {3, 0}: 0,
		{0, 1}: 0, {1, 1}: 10, {2, 1}: 20, {3, 1}: 30,
		{0, 2}: 0, {1, 2}: 40, {2, 2}: 50, {3, 2}: 60,
	}
	for idx, want := range expected {
		got, err := dest.Get([]int{idx[0], idx[1]})
		require.NoError(t, err)
		require.Equal(t, want, got, "x=%d y=%d", idx[0], idx[1])
	}
}

// S3 (nearest tie-break): two 2x2 frames of all-ones, positions (0,0) and
// (1,0); nearest_frame(0). At the exact tie point, the later frame (index
// 1) wins, shown by giving it distinct values.
func TestScenario_S3_NearestTieBreak(t *testing.T) {
	t.Parallel()

	f1 := buildFrame(t, []float64{0, 0}, []int{2, 2}, matrix.F64, []float64{1, 1, 1, 1})
	f2 := buildFrame(t, []float64{1, 0}, []int{2, 2}, matrix.F64, []float64{2, 2, 2, 2})
	frames := []*frame.Frame{f1, f2}

	method, err := combine.NewNearestFrame(0, stitch.FootprintsOf(frames))
	require.NoError(t, err)

	s, err := stitch.New(2, method, frames)
	require.NoError(t, err)

	dest, err := matrix.NewDense([]int{3, 2}, matrix.F64)
	require.NoError(t, err)
	require.NoError(t, s.Stitch(context.Background(), dest, []int{0, 0}, []int{0, 0}, nil))

	got, err := dest.Get([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, 2.0, got, "equidistant footprints at x=1 must resolve to the later frame")
}

// S5 (min-skip-NaN): three f32 frames at the same shift (0,0), values
// chosen so each cell has at least one non-NaN contributor.
func TestScenario_S5_MinSkipNaN(t *testing.T) {
	t.Parallel()

	nan := float64frombits()
	fA := buildFrame(t, []float64{0, 0}, []int{2, 2}, matrix.F32, []float64{1, nan, 3, 4})
	fB := buildFrame(t, []float64{0, 0}, []int{2, 2}, matrix.F32, []float64{nan, 2, nan, 4})
	fC := buildFrame(t, []float64{0, 0}, []int{2, 2}, matrix.F32, []float64{0, nan, nan, nan})

	s, err := stitch.New(2, combine.MinNotNaN{Default: 99}, []*frame.Frame{fA, fB, fC})
	require.NoError(t, err)

	dest, err := matrix.NewDense([]int{2, 2}, matrix.F64)
	require.NoError(t, err)
	require.NoError(t, s.Stitch(context.Background(), dest, []int{0, 0}, []int{0, 0}, nil))

	expected := map[[2]int]float64{
		{0, 0}: 0, {0, 1}: 2,
		{1, 0}: 3, {1, 1}: 4,
	}
	for idx, want := range expected {
		got, err := dest.Get([]int{idx[0], idx[1]})
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// S6 (tiling invariance): materialize the S4 weighted-seam scenario with
// two different tile sizes and require bytewise-equal output.
func TestScenario_S6_TilingInvariance(t *testing.T) {
	t.Parallel()

	build := func(tileDims []int) []float64 {
		fA := buildFrame(t, []float64{0}, []int{4}, matrix.F64, []float64{1, 1, 1, 1})
		fB := buildFrame(t, []float64{2}, []int{4}, matrix.F64, []float64{5, 5, 5, 5})
		frames := []*frame.Frame{fA, fB}

		method, err := combine.NewWeightedFrames(0, 0, stitch.FootprintsOf(frames))
		require.NoError(t, err)

		s, err := stitch.New(1, method, frames)
		require.NoError(t, err)

		dest, err := matrix.NewDense([]int{6}, matrix.F64)
		require.NoError(t, err)
		require.NoError(t, s.Stitch(context.Background(), dest, []int{0}, tileDims, nil))

		raw, ok := dest.AsRawSlice(matrix.F64)
		require.True(t, ok)

		return append([]float64(nil), raw.([]float64)...)
	}

	whole := build([]int{6})
	tiled := build([]int{2})
	require.Equal(t, whole, tiled)
}

func float64frombits() float64 {
	var nan float64
	nan = nan / nan // NaN without importing math, matching 0/0 in the reference semantics

	return nan
}
