// SPDX-License-Identifier: MIT
// Package area implements the rectangular-area algebra (C1): finite-
// dimensional boxes with min/max corners, overlap and containment tests,
// and the signed parallel distance used by the distance-aware stitching
// methods in package combine.
//
// An Area is immutable once constructed; every mutator (Shift) returns a
// new value.
package area

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stitchcore/errs"
)

// maxDimCount is the dimensionality ceiling enforced by New (spec §7).
const maxDimCount = 63

// op name constants for unified error wrapping.
const (
	opNew              = "New"
	opShift            = "Shift"
	opOverlaps         = "Overlaps"
	opContains         = "Contains"
	opParallelDistance = "ParallelDistance"
)

func areaErrorf(op string, err error) error {
	return fmt.Errorf("area.%s: %w", op, err)
}

// Area is a closed axis-aligned box in ℝⁿ: min[k] ≤ max[k] for every axis k.
type Area struct {
	min []float64
	max []float64
}

// New validates min ≤ max componentwise and returns an immutable Area.
// A copy of both slices is kept so the caller may reuse its arguments.
func New(min, max []float64) (*Area, error) {
	if len(min) == 0 || len(max) == 0 {
		return nil, areaErrorf(opNew, errs.ErrInvalidArea)
	}
	if len(min) != len(max) {
		return nil, areaErrorf(opNew, errs.ErrInvalidArea)
	}
	if len(min) > maxDimCount {
		return nil, areaErrorf(opNew, errs.ErrInvalidArea)
	}
	for k := range min {
		if min[k] > max[k] {
			return nil, areaErrorf(opNew, errs.ErrInvalidArea)
		}
	}

	mn := make([]float64, len(min))
	mx := make([]float64, len(max))
	copy(mn, min)
	copy(mx, max)

	return &Area{min: mn, max: mx}, nil
}

// DimCount returns the number of axes.
func (a *Area) DimCount() int { return len(a.min) }

// Min returns a copy of the box's minimum corner.
func (a *Area) Min() []float64 { return append([]float64(nil), a.min...) }

// Max returns a copy of the box's maximum corner.
func (a *Area) Max() []float64 { return append([]float64(nil), a.max...) }

// Size returns max[k] - min[k] for every axis.
func (a *Area) Size() []float64 {
	size := make([]float64, len(a.min))
	for k := range a.min {
		size[k] = a.max[k] - a.min[k]
	}

	return size
}

// Shift returns a new Area translated by v.
func (a *Area) Shift(v []float64) (*Area, error) {
	if len(v) != a.DimCount() {
		return nil, areaErrorf(opShift, errs.ErrInvalidArgument)
	}
	mn := make([]float64, a.DimCount())
	mx := make([]float64, a.DimCount())
	for k := range a.min {
		mn[k] = a.min[k] + v[k]
		mx[k] = a.max[k] + v[k]
	}

	return &Area{min: mn, max: mx}, nil
}

// Overlaps reports whether a and other share at least one point. Boxes that
// only touch along a boundary (zero-width intersection on some axis) still
// count as overlapping, matching the closed-box semantics of §3.
func (a *Area) Overlaps(other *Area) (bool, error) {
	if other == nil {
		return false, areaErrorf(opOverlaps, errs.ErrInvalidArgument)
	}
	if a.DimCount() != other.DimCount() {
		return false, areaErrorf(opOverlaps, errs.ErrInvalidArgument)
	}
	for k := range a.min {
		if a.max[k] < other.min[k] || other.max[k] < a.min[k] {
			return false, nil
		}
	}

	return true, nil
}

// Contains reports whether point p lies within the closed box.
func (a *Area) Contains(p []float64) (bool, error) {
	if len(p) != a.DimCount() {
		return false, areaErrorf(opContains, errs.ErrInvalidArgument)
	}
	for k := range a.min {
		if p[k] < a.min[k] || p[k] > a.max[k] {
			return false, nil
		}
	}

	return true, nil
}

// ParallelDistance computes the signed distance of p to the box as defined
// in spec §3: max_k max(min[k]-p[k], p[k]-max[k]). Negative inside (depth to
// the nearest face), positive outside (distance to the nearest face), zero
// on the boundary.
func (a *Area) ParallelDistance(p []float64) (float64, error) {
	if len(p) != a.DimCount() {
		return 0, areaErrorf(opParallelDistance, errs.ErrInvalidArgument)
	}
	d := math.Inf(-1)
	for k := range a.min {
		// the per-axis candidate: how far p[k] sticks out past either face
		lo := a.min[k] - p[k]
		hi := p[k] - a.max[k]
		axis := lo
		if hi > axis {
			axis = hi
		}
		if axis > d {
			d = axis
		}
	}

	return d, nil
}

// IntBox is the lossless integer-coordinate form of an Area, valid only
// when every corner coordinate is integral.
type IntBox struct {
	Min []int
	Max []int
}

// ToIntegerBox casts the box to integer coordinates, succeeding only when
// every min/max component is already integral.
func (a *Area) ToIntegerBox() (*IntBox, bool) {
	mn := make([]int, a.DimCount())
	mx := make([]int, a.DimCount())
	for k := range a.min {
		if a.min[k] != math.Trunc(a.min[k]) || a.max[k] != math.Trunc(a.max[k]) {
			return nil, false
		}
		mn[k] = int(a.min[k])
		mx[k] = int(a.max[k])
	}

	return &IntBox{Min: mn, Max: mx}, true
}

// RoundToInteger rounds every corner coordinate to the nearest integer,
// always succeeding (lossy unless coordinates were already integral).
func (a *Area) RoundToInteger() *IntBox {
	mn := make([]int, a.DimCount())
	mx := make([]int, a.DimCount())
	for k := range a.min {
		mn[k] = int(math.Round(a.min[k]))
		mx[k] = int(math.Round(a.max[k]))
	}

	return &IntBox{Min: mn, Max: mx}
}
