package stitch_test

import (
	"testing"

	"github.com/katalvlaran/stitchcore/combine"
	"github.com/katalvlaran/stitchcore/frame"
	"github.com/katalvlaran/stitchcore/matrix"
	"github.com/katalvlaran/stitchcore/stitch"
	"github.com/stretchr/testify/require"
)

// AsStitched over an area with no overlapping frames must take the
// constant fast path and answer the method's default everywhere, without
// ever materializing a destination buffer.
func TestAsStitched_EmptyConstantFill(t *testing.T) {
	t.Parallel()

	s, err := stitch.New(2, combine.AverageNotNaN{Default: 42}, nil)
	require.NoError(t, err)

	a, err := areaOf(t, []float64{0, 0}, []float64{3, 2})
	require.NoError(t, err)

	view, err := s.AsStitched(matrix.F64, a)
	require.NoError(t, err)
	require.Equal(t, matrix.F64, view.ElementType())
	require.Equal(t, []int{3, 2}, view.Dimensions())

	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			v, err := view.Get([]int{x, y})
			require.NoError(t, err)
			require.Equal(t, 42.0, v)
		}
	}
}

// AsStitched over a single overlapping frame takes the single-frame fast
// path; reading through the returned lazy view must reproduce the same
// values the eager Stitch copy would produce (scenario S2's frame/layout).
func TestAsStitched_SingleFrame(t *testing.T) {
	t.Parallel()

	// dims are (x:3, y:2) and buildFrame fills row-major (y fastest), so the
	// flat values list S2's columns: x=0 -> 10,40; x=1 -> 20,50; x=2 -> 30,60.
	f := buildFrame(t, []float64{1, 1}, []int{3, 2}, matrix.F64, []float64{10, 40, 20, 50, 30, 60})

	s, err := stitch.New(2, combine.FirstNotNaN{Default: 0}, []*frame.Frame{f})
	require.NoError(t, err)

	a, err := areaOf(t, []float64{0, 0}, []float64{4, 3})
	require.NoError(t, err)

	view, err := s.AsStitched(matrix.F64, a)
	require.NoError(t, err)
	require.Equal(t, []int{4, 3}, view.Dimensions())

	expected := map[[2]int]float64{
		{0, 0}: 0, {1, 0}: 0, {2, 0}: 0, {3, 0}: 0,
		{0, 1}: 0, {1, 1}: 10, {2, 1}: 20, {3, 1}: 30,
		{0, 2}: 0, {1, 2}: 40, {2, 2}: 50, {3, 2}: 60,
	}
	for idx, want := range expected {
		got, err := view.Get([]int{idx[0], idx[1]})
		require.NoError(t, err)
		require.Equal(t, want, got, "x=%d y=%d", idx[0], idx[1])
	}
}

// Shift equivariance (spec.md §8 property 5): as_stitched(t, A) on a set S
// equals as_stitched(t, A - v) on S with every position shifted by -v, for
// any integer vector v. Exercised here with the coordinate-free path (two
// overlapping shift frames and a NaN-skipping reducer) so the comparison
// walks every destination cell, not just one fast-path branch.
func TestAsStitched_ShiftEquivariance(t *testing.T) {
	t.Parallel()

	buildView := func(originA, originB []float64, queryMin, queryMax []float64) matrix.Matrix {
		fA := buildFrame(t, originA, []int{2, 2}, matrix.F64, []float64{1, 2, 3, 4})
		fB := buildFrame(t, originB, []int{2, 2}, matrix.F64, []float64{5, 6, 7, 8})

		s, err := stitch.New(2, combine.FirstNotNaN{Default: -1}, []*frame.Frame{fA, fB})
		require.NoError(t, err)

		a, err := areaOf(t, queryMin, queryMax)
		require.NoError(t, err)

		view, err := s.AsStitched(matrix.F64, a)
		require.NoError(t, err)

		return view
	}

	unshifted := buildView([]float64{0, 0}, []float64{3, 1}, []float64{0, 0}, []float64{5, 3})

	shift := []float64{-4, 7}
	shifted := buildView(
		[]float64{0 + shift[0], 0 + shift[1]},
		[]float64{3 + shift[0], 1 + shift[1]},
		[]float64{0 + shift[0], 0 + shift[1]},
		[]float64{5 + shift[0], 3 + shift[1]},
	)

	dims := unshifted.Dimensions()
	require.Equal(t, dims, shifted.Dimensions())

	for x := 0; x < dims[0]; x++ {
		for y := 0; y < dims[1]; y++ {
			want, err := unshifted.Get([]int{x, y})
			require.NoError(t, err)
			got, err := shifted.Get([]int{x, y})
			require.NoError(t, err)
			require.Equal(t, want, got, "x=%d y=%d", x, y)
		}
	}
}
