package continuation

import (
	"fmt"

	"github.com/katalvlaran/stitchcore/errs"
)

// extendedView wraps an Extendable with per-axis Before/After padding,
// resolving out-of-range reads through a Mode. It implements Extendable
// itself so it can be fed straight into another Processor.
type extendedView struct {
	inner  Extendable
	before []int
	mode   Mode
	dims   []int
}

// Extend returns an Extendable exposing inner padded by before/after along
// every axis, with out-of-range reads resolved by mode.
func Extend(inner Extendable, before, after []int, mode Mode) (Extendable, error) {
	n := inner.DimCount()
	if len(before) != n || len(after) != n {
		return nil, fmt.Errorf("continuation.Extend: %w", errs.ErrInvalidArgument)
	}
	dims := make([]int, n)
	for k := 0; k < n; k++ {
		dims[k] = before[k] + inner.Dim(k) + after[k]
	}

	return &extendedView{inner: inner, before: append([]int(nil), before...), mode: mode, dims: dims}, nil
}

func (v *extendedView) DimCount() int   { return len(v.dims) }
func (v *extendedView) Dim(k int) int   { return v.dims[k] }

func (v *extendedView) Get(index []int) (float64, error) {
	src := make([]int, v.DimCount())
	for k, idx := range index {
		localIdx := idx - v.before[k]
		mapped, ok := v.mode.MapIndex(localIdx, v.inner.Dim(k))
		if !ok {
			return v.mode.ConstantValue(), nil
		}
		src[k] = mapped
	}

	return v.inner.Get(src)
}

// croppedView exposes the interior [offset, offset+dims) window of inner,
// undoing an Extend's padding.
type croppedView struct {
	inner  Extendable
	offset []int
	dims   []int
}

// Crop returns an Extendable over inner's interior window starting at
// offset with the given dims, discarding the padding Extend introduced.
func Crop(inner Extendable, offset, dims []int) (Extendable, error) {
	if len(offset) != inner.DimCount() || len(dims) != inner.DimCount() {
		return nil, fmt.Errorf("continuation.Crop: %w", errs.ErrInvalidArgument)
	}

	return &croppedView{inner: inner, offset: append([]int(nil), offset...), dims: append([]int(nil), dims...)}, nil
}

func (v *croppedView) DimCount() int { return len(v.dims) }
func (v *croppedView) Dim(k int) int { return v.dims[k] }

func (v *croppedView) Get(index []int) (float64, error) {
	src := make([]int, len(index))
	for k, idx := range index {
		src[k] = idx + v.offset[k]
	}

	return v.inner.Get(src)
}

// Apply implements the four steps of spec §4.7: extend the primary input
// by the processor's required aperture under c.mode, extend every
// additional input with a zero-constant continuation (their out-of-bounds
// values cannot affect output at valid pixels under aperture composition),
// delegate to the wrapped processor over the padded outputShape, then crop
// the margin off so the result has exactly outputShape.
func (c *Continued) Apply(inputs []Extendable, outputShape []int) (Extendable, error) {
	if len(inputs) == 0 {
		return nil, continuationErrorf("Apply", errs.ErrInvalidArgument)
	}
	aperture := c.inner.RequiredAperture()
	n := inputs[0].DimCount()
	if len(aperture.Before) != n || len(aperture.After) != n {
		return nil, continuationErrorf("Apply", errs.ErrInvalidArgument)
	}

	extended := make([]Extendable, len(inputs))
	for i, in := range inputs {
		var mode Mode
		if i == 0 {
			mode = c.mode
		} else {
			mode = Constant(0)
		}
		ev, err := Extend(in, aperture.Before, aperture.After, mode)
		if err != nil {
			return nil, continuationErrorf("Apply", err)
		}
		extended[i] = ev
	}

	paddedShape := make([]int, n)
	for k := 0; k < n; k++ {
		paddedShape[k] = aperture.Before[k] + outputShape[k] + aperture.After[k]
	}

	result, err := c.inner.Apply(extended, paddedShape)
	if err != nil {
		return nil, continuationErrorf("Apply", err)
	}

	return Crop(result, aperture.Before, outputShape)
}
