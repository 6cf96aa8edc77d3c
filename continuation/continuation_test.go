package continuation_test

import (
	"testing"

	"github.com/katalvlaran/stitchcore/continuation"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/stretchr/testify/require"
)

// grid1D is a minimal 1-D Extendable backed by a plain slice, used only to
// exercise Extend/Crop without pulling in package matrix.
type grid1D []float64

func (g grid1D) DimCount() int { return 1 }
func (g grid1D) Dim(k int) int { return len(g) }
func (g grid1D) Get(index []int) (float64, error) { return g[index[0]], nil }

func TestNewContinued_RejectsZeroMode(t *testing.T) {
	t.Parallel()

	_, err := continuation.NewContinued(fakeProcessor{}, continuation.Mode{})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

type fakeProcessor struct{}

func (fakeProcessor) RequiredAperture() continuation.Aperture {
	return continuation.Aperture{Before: []int{1}, After: []int{1}}
}
func (fakeProcessor) Apply(inputs []continuation.Extendable, outputShape []int) (continuation.Extendable, error) {
	return inputs[0], nil
}

func TestExtend_Constant(t *testing.T) {
	t.Parallel()

	g := grid1D{1, 2, 3}
	ext, err := continuation.Extend(g, []int{2}, []int{2}, continuation.Constant(-1))
	require.NoError(t, err)
	require.Equal(t, 7, ext.Dim(0))

	v, err := ext.Get([]int{0})
	require.NoError(t, err)
	require.Equal(t, -1.0, v)

	v, err = ext.Get([]int{2})
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = ext.Get([]int{6})
	require.NoError(t, err)
	require.Equal(t, -1.0, v)
}

func TestExtend_Cyclic(t *testing.T) {
	t.Parallel()

	g := grid1D{1, 2, 3}
	ext, err := continuation.Extend(g, []int{2}, []int{2}, continuation.Cyclic())
	require.NoError(t, err)

	v, err := ext.Get([]int{0}) // logical index -2 -> wraps to 1 (index 1 mod 3)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

// windowSumProcessor sums each output cell's 3-wide window of its primary
// input plus the co-located cell of a second input, letting a single test
// distinguish the primary's chosen continuation mode from the zero-padding
// forced on every additional input.
type windowSumProcessor struct{}

func (windowSumProcessor) RequiredAperture() continuation.Aperture {
	return continuation.Aperture{Before: []int{1}, After: []int{1}}
}

// Apply receives inputs already extended by RequiredAperture and must
// return a result of outputShape — which Continued passes as the padded
// shape, so the margin introduced by Extend is still present for Crop to
// remove afterward. Neighbor reads clamp at the padded buffer's own edges;
// those clamped cells only ever land in the margin Crop discards.
func (windowSumProcessor) Apply(inputs []continuation.Extendable, outputShape []int) (continuation.Extendable, error) {
	primary, secondary := inputs[0], inputs[1]
	n := outputShape[0]
	out := make(grid1D, n)
	for i := range out {
		left := i - 1
		if left < 0 {
			left = i
		}
		right := i + 1
		if right >= n {
			right = i
		}
		a, err := primary.Get([]int{left})
		if err != nil {
			return nil, err
		}
		b, err := primary.Get([]int{i})
		if err != nil {
			return nil, err
		}
		c, err := primary.Get([]int{right})
		if err != nil {
			return nil, err
		}
		center, err := secondary.Get([]int{i})
		if err != nil {
			return nil, err
		}
		out[i] = a + b + c + center
	}

	return out, nil
}

// TestContinued_Apply_ExtendDelegateCrop exercises all four steps of
// spec.md §4.7 together: the primary input is extended under a non-Constant
// mode (Reflect, so the boundary behavior isn't a degenerate fill), the
// secondary input is forced to Constant(0) regardless of that mode, the
// wrapped processor runs over both extended views, and the result is
// cropped back to the original shape.
func TestContinued_Apply_ExtendDelegateCrop(t *testing.T) {
	t.Parallel()

	primary := grid1D{10, 20, 30}
	secondary := grid1D{100, 200, 300}

	c, err := continuation.NewContinued(windowSumProcessor{}, continuation.Reflect())
	require.NoError(t, err)

	result, err := c.Apply([]continuation.Extendable{primary, secondary}, []int{3})
	require.NoError(t, err)
	require.Equal(t, 3, result.Dim(0))

	// primary reflects to [10,10,20,30,30] under Before=After=1; secondary
	// zero-pads to [0,100,200,300,0]; cropping keeps padded indices 1..3,
	// each the sum of primary's 3-wide window there plus secondary at the
	// same padded index.
	expected := []float64{140, 260, 380}
	for i, want := range expected {
		got, err := result.Get([]int{i})
		require.NoError(t, err)
		require.Equal(t, want, got, "index %d", i)
	}
}

func TestCrop_UndoesExtend(t *testing.T) {
	t.Parallel()

	g := grid1D{1, 2, 3}
	ext, err := continuation.Extend(g, []int{2}, []int{2}, continuation.Constant(0))
	require.NoError(t, err)

	cropped, err := continuation.Crop(ext, []int{2}, []int{3})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		v, err := cropped.Get([]int{i})
		require.NoError(t, err)
		require.Equal(t, g[i], v)
	}
}
