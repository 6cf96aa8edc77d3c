// SPDX-License-Identifier: MIT
// Package frame implements the frame position (C3) and frame (C4)
// components: an area in destination space plus the inverse transform back
// to source-matrix coordinates, and the lazy-sampling function factory that
// turns a matrix plus that inverse transform into a coordinate-indexed
// real-valued function, NaN outside the source extent.
package frame

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/matrix"
	"github.com/katalvlaran/stitchcore/transform"
)

const (
	opNewShiftPosition     = "NewShiftPosition"
	opNewUniversalPosition = "NewUniversalPosition"
	opAsInterpolationFunc  = "AsInterpolationFunc"
)

func frameErrorf(op string, err error) error {
	return fmt.Errorf("frame.%s: %w", op, err)
}

// SampleFunc is a real-valued function over destination coordinates,
// returning NaN wherever the underlying frame contributes nothing.
// SampleFunc values are safe for concurrent use from multiple goroutines:
// they close only over immutable state (spec §4.6, §5).
type SampleFunc func(p []float64) float64

// Position is the destination-space footprint of a frame's pixel grid,
// plus the inverse transform from destination coordinates to source-matrix
// index coordinates (spec §3, §4.3). Position is tagged rather than
// subclassed (spec §9 "No inheritance"): the isShift field distinguishes the
// shift fast path from the universal general case.
type Position struct {
	area       *area.Area
	inverse    transform.Transform
	isShift    bool
	shiftOrigin []float64 // only meaningful when isShift
}

// NewShiftPosition places a frame's source origin at destination point
// origin; the footprint is origin + dims (spec §3 "Shift position").
func NewShiftPosition(origin []float64, dims []int) (*Position, error) {
	if len(origin) == 0 || len(origin) != len(dims) {
		return nil, frameErrorf(opNewShiftPosition, errs.ErrInvalidArgument)
	}
	max := make([]float64, len(origin))
	for k := range origin {
		if dims[k] <= 0 {
			return nil, frameErrorf(opNewShiftPosition, errs.ErrInvalidArgument)
		}
		max[k] = origin[k] + float64(dims[k])
	}
	a, err := area.New(origin, max)
	if err != nil {
		return nil, frameErrorf(opNewShiftPosition, err)
	}
	inv, err := transform.NewShift(negate(origin))
	if err != nil {
		return nil, frameErrorf(opNewShiftPosition, err)
	}

	return &Position{area: a, inverse: inv, isShift: true, shiftOrigin: append([]float64(nil), origin...)}, nil
}

// NewUniversalPosition builds a Position from an arbitrary inverse
// transform (destination -> source coords) plus a declared destination
// area. Under a general transform, the source matrix dims do not alone
// determine the footprint (spec §3 "Universal position").
func NewUniversalPosition(inverse transform.Transform, destArea *area.Area) (*Position, error) {
	if inverse == nil || destArea == nil {
		return nil, frameErrorf(opNewUniversalPosition, errs.ErrInvalidArgument)
	}
	if inverse.DimCount() != destArea.DimCount() {
		return nil, frameErrorf(opNewUniversalPosition, errs.ErrInvalidArgument)
	}

	return &Position{area: destArea, inverse: inverse, isShift: false}, nil
}

// Area returns the destination-space footprint of the frame.
func (p *Position) Area() *area.Area { return p.area }

// Inverse returns the destination-to-source coordinate transform.
func (p *Position) Inverse() transform.Transform { return p.inverse }

// IsShift reports whether this position was built with NewShiftPosition.
func (p *Position) IsShift() bool { return p.isShift }

// ShiftOrigin returns the shift origin (only valid when IsShift()).
func (p *Position) ShiftOrigin() []float64 { return append([]float64(nil), p.shiftOrigin...) }

// AsInterpolationFunc returns a sampler over destination coordinates for
// matrix m, per spec §4.3:
//  1. apply the inverse transform to the input point;
//  2. if the inverse is an exact integer shift, sample with step-function
//     (nearest-floor index) semantics, else n-linear interpolation;
//  3. return NaN outside m's extent.
func (p *Position) AsInterpolationFunc(m matrix.Matrix) (SampleFunc, error) {
	if m == nil {
		return nil, frameErrorf(opAsInterpolationFunc, errs.ErrInvalidArgument)
	}
	if m.DimCount() != p.inverse.DimCount() {
		return nil, frameErrorf(opAsInterpolationFunc, errs.ErrInvalidArgument)
	}

	dims := m.Dimensions()
	stepFunction := false
	if s, ok := p.inverse.(*transform.Shift); ok {
		stepFunction = s.IsIntegerShift(make([]float64, len(dims)))
	}
	inv := p.inverse
	n := len(dims)

	return func(dst []float64) float64 {
		if len(dst) != n {
			return math.NaN()
		}
		src := make([]float64, n)
		if err := inv.Map(src, dst); err != nil {
			return math.NaN()
		}
		if stepFunction {
			return sampleStep(m, dims, src)
		}

		return sampleLinear(m, dims, src)
	}, nil
}

func negate(v []float64) []float64 {
	out := make([]float64, len(v))
	for k, x := range v {
		out[k] = -x
	}

	return out
}

// sampleStep implements nearest-floor index sampling, returning NaN
// outside [0, dim) on any axis.
func sampleStep(m matrix.Matrix, dims []int, src []float64) float64 {
	idx := make([]int, len(src))
	for k, c := range src {
		i := int(math.Floor(c))
		if i < 0 || i >= dims[k] {
			return math.NaN()
		}
		idx[k] = i
	}
	v, err := m.Get(idx)
	if err != nil {
		return math.NaN()
	}

	return v
}

// sampleLinear implements n-linear interpolation (the n-dimensional
// generalization of bilinear interpolation), returning NaN whenever src
// lies outside the convex hull [0, dim-1] of sample centers on any axis.
func sampleLinear(m matrix.Matrix, dims []int, src []float64) float64 {
	n := len(src)
	floor := make([]int, n)
	frac := make([]float64, n)
	for k, c := range src {
		if c < 0 || c > float64(dims[k]-1) {
			return math.NaN()
		}
		f := math.Floor(c)
		fi := int(f)
		if fi >= dims[k]-1 {
			fi = dims[k] - 1
			frac[k] = 0
		} else {
			frac[k] = c - f
		}
		floor[k] = fi
	}

	idx := make([]int, n)
	var walk func(axis int, weight float64) (float64, float64)
	walk = func(axis int, weight float64) (sum, weightSum float64) {
		if axis == n {
			v, err := m.Get(idx)
			if err != nil || math.IsNaN(v) {
				return 0, 0
			}

			return v * weight, weight
		}
		idx[axis] = floor[axis]
		s0, w0 := walk(axis+1, weight*(1-frac[axis]))
		sum, weightSum = s0, w0
		if frac[axis] > 0 && floor[axis]+1 < dims[axis] {
			idx[axis] = floor[axis] + 1
			s1, w1 := walk(axis+1, weight*frac[axis])
			sum += s1
			weightSum += w1
		}

		return sum, weightSum
	}

	sum, weightSum := walk(0, 1)
	if weightSum == 0 {
		return math.NaN()
	}

	return sum / weightSum
}
