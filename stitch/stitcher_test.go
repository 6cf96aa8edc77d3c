package stitch_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/combine"
	"github.com/katalvlaran/stitchcore/frame"
	"github.com/katalvlaran/stitchcore/matrix"
	"github.com/katalvlaran/stitchcore/stitch"
	"github.com/stretchr/testify/require"
)

func areaOf(t *testing.T, min, max []float64) (*area.Area, error) {
	t.Helper()

	return area.New(min, max)
}

func buildFrame(t *testing.T, origin []float64, dims []int, elemType matrix.ElementType, values []float64) *frame.Frame {
	t.Helper()
	m, err := matrix.NewDense(dims, elemType)
	require.NoError(t, err)
	require.NoError(t, forEachFlatIndex(dims, func(idx []int, flat int) error {
		return m.Set(idx, values[flat])
	}))
	pos, err := frame.NewShiftPosition(origin, dims)
	require.NoError(t, err)
	f, err := frame.New(m, pos)
	require.NoError(t, err)

	return f
}

// forEachFlatIndex visits an n-D box in row-major order, matching Dense's
// own storage order, so a flat values slice fills exactly as written.
func forEachFlatIndex(dims []int, visit func(idx []int, flat int) error) error {
	n := len(dims)
	total := 1
	for _, d := range dims {
		total *= d
	}
	idx := make([]int, n)
	for flat := 0; flat < total; flat++ {
		if err := visit(idx, flat); err != nil {
			return err
		}
		for k := n - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < dims[k] {
				break
			}
			idx[k] = 0
		}
	}

	return nil
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := stitch.New(0, combine.FirstNotNaN{Default: 0}, nil)
	require.Error(t, err)

	_, err = stitch.New(2, nil, nil)
	require.Error(t, err)
}

func TestActualFrames_FiltersByOverlap(t *testing.T) {
	t.Parallel()

	f1 := buildFrame(t, []float64{0, 0}, []int{2, 2}, matrix.F64, []float64{1, 1, 1, 1})
	f2 := buildFrame(t, []float64{10, 10}, []int{2, 2}, matrix.F64, []float64{1, 1, 1, 1})

	s, err := stitch.New(2, combine.FirstNotNaN{Default: 0}, []*frame.Frame{f1, f2})
	require.NoError(t, err)

	a, err := areaOf(t, []float64{0, 0}, []float64{2, 2})
	require.NoError(t, err)

	actual, err := s.ActualFrames(a)
	require.NoError(t, err)
	require.Len(t, actual, 1)
}

func TestFreeResources_NoPanicWithoutReleasable(t *testing.T) {
	t.Parallel()

	f1 := buildFrame(t, []float64{0, 0}, []int{1, 1}, matrix.F64, []float64{1})
	s, err := stitch.New(2, combine.FirstNotNaN{Default: 0}, []*frame.Frame{f1})
	require.NoError(t, err)
	s.FreeResources()
}

func TestStitch_RejectsMismatchedDims(t *testing.T) {
	t.Parallel()

	s, err := stitch.New(2, combine.FirstNotNaN{Default: 0}, nil)
	require.NoError(t, err)
	dest, err := matrix.NewDense([]int{2, 2}, matrix.F64)
	require.NoError(t, err)

	err = s.Stitch(context.Background(), dest, []int{0}, []int{0, 0}, nil)
	require.Error(t, err)
}
