// SPDX-License-Identifier: MIT
// Package transform implements the coordinate operator (C2): forward and
// inverse mappings between destination and source coordinate spaces.
//
// Three variants are recognized, tagged rather than related by inheritance
// (spec §9 "No inheritance"): Shift (translation only), Affine (matrix A
// plus vector b, with a required allocation-free 2-D fast path), and
// General (an opaque caller-supplied pair of functions).
package transform

import (
	"fmt"

	"github.com/katalvlaran/stitchcore/errs"
)

const (
	opNewShift   = "NewShift"
	opNewAffine  = "NewAffine"
	opMap        = "Map"
	opInverseMap = "InverseMap"
	opShiftBy    = "ShiftBy"
	opCompose    = "Compose"
)

func transformErrorf(op string, err error) error {
	return fmt.Errorf("transform.%s: %w", op, err)
}

// Transform is a coordinate operator with a companion inverse. forward ∘
// inverse is documented to be the identity on the transform's domain; this
// is not enforced at runtime for General transforms, whose forward/inverse
// pair is opaque and caller-supplied.
type Transform interface {
	// Map writes forward(src) into dst. len(dst) == len(src) == DimCount().
	Map(dst, src []float64) error
	// InverseMap writes inverse(src) into dst.
	InverseMap(dst, src []float64) error
	// DimCount returns the dimensionality this transform operates on.
	DimCount() int
	// IsShift reports whether this transform is translation-only.
	IsShift() bool
	// IsLinear reports whether this transform is affine (includes Shift).
	IsLinear() bool
	// AsLinear returns the affine (A, b) representation when IsLinear,
	// or ok=false otherwise.
	AsLinear() (a [][]float64, b []float64, ok bool)
	// ShiftBy returns a new Transform equal to this one composed after an
	// additional translation by v: result(x) = this(x) + v.
	ShiftBy(v []float64) (Transform, error)
	// Compose returns a Transform equal to this(other(x)).
	Compose(other Transform) (Transform, error)
}

func validateVec(dim int, v []float64) error {
	if len(v) != dim {
		return errs.ErrInvalidArgument
	}

	return nil
}
