package frame_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/frame"
	"github.com/katalvlaran/stitchcore/matrix"
	"github.com/katalvlaran/stitchcore/transform"
	"github.com/stretchr/testify/require"
)

func buildMatrix(t *testing.T, rows, cols int, vals [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense([]int{rows, cols}, matrix.F64)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set([]int{i, j}, vals[i][j]))
		}
	}

	return m
}

func TestShiftPosition_SamplerNaNBoundaryAndExactValues(t *testing.T) {
	t.Parallel()

	m := buildMatrix(t, 2, 2, [][]float64{{1, 2}, {3, 4}})
	pos, err := frame.NewShiftPosition([]float64{1, 1}, []int{2, 2})
	require.NoError(t, err)

	sampler, err := pos.AsInterpolationFunc(m)
	require.NoError(t, err)

	// integer point mapping to a valid source index equals the source value
	require.Equal(t, 1.0, sampler([]float64{1, 1}))
	require.Equal(t, 4.0, sampler([]float64{2, 2}))

	// every point outside the footprint area is NaN
	require.True(t, math.IsNaN(sampler([]float64{0, 0})))
	require.True(t, math.IsNaN(sampler([]float64{5, 5})))

	a := pos.Area()
	require.Equal(t, []float64{1, 1}, a.Min())
	require.Equal(t, []float64{3, 3}, a.Max())
}

func TestUniversalPosition_LinearInterpolation(t *testing.T) {
	t.Parallel()

	m := buildMatrix(t, 2, 2, [][]float64{{0, 10}, {20, 30}})
	inv, err := transform.NewAffine([][]float64{{1, 0}, {0, 1}}, []float64{0, 0})
	require.NoError(t, err)

	destArea, err := area.New([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	pos, err := frame.NewUniversalPosition(inv, destArea)
	require.NoError(t, err)

	sampler, err := pos.AsInterpolationFunc(m)
	require.NoError(t, err)

	// midpoint between all four corners averages them (all equal weight)
	got := sampler([]float64{0.5, 0.5})
	require.InDelta(t, 15.0, got, 1e-9)

	require.True(t, math.IsNaN(sampler([]float64{-1, -1})))
}
