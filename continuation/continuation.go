// SPDX-License-Identifier: MIT
// Package continuation implements the continued aperture processor wrapper
// (C7): it extends a finite matrix into virtual infinity under a chosen
// policy, so that an aperture-based processor can be composed with any
// out-of-bounds handling without knowing about it.
package continuation

import (
	"fmt"

	"github.com/katalvlaran/stitchcore/errs"
)

const opNewContinued = "NewContinued"

func continuationErrorf(op string, err error) error {
	return fmt.Errorf("continuation.%s: %w", op, err)
}

// Kind identifies a continuation policy.
type Kind int

const (
	// kindNone is the zero value and is never a legal Mode (spec §4.7
	// "Rejected mode").
	kindNone Kind = iota
	KindConstant
	KindCyclic
	KindReflect
	KindPseudoCyclic
	KindMirror
)

// Mode is a continuation policy: a policy for extending a finite matrix
// into virtual infinity along every axis. The zero Mode{} is invalid:
// NewContinued and matrix sub-views reject it. Extend does not check it; a
// view extended with the zero Mode reads every out-of-range index as 0.
type Mode struct {
	kind  Kind
	value float64 // only meaningful for KindConstant
}

// Constant returns a Mode that extends out-of-bounds reads with a fixed
// value.
func Constant(value float64) Mode { return Mode{kind: KindConstant, value: value} }

// Cyclic wraps coordinates modulo the extent on each axis.
func Cyclic() Mode { return Mode{kind: KindCyclic} }

// Reflect mirrors coordinates at each boundary, repeating the edge sample
// (index -1 reads index 0, index n reads index n-1).
func Reflect() Mode { return Mode{kind: KindReflect} }

// PseudoCyclic wraps with a coordinate rewrite that keeps periodicity while
// avoiding the boundary-doubling Reflect introduces.
func PseudoCyclic() Mode { return Mode{kind: KindPseudoCyclic} }

// Mirror is like Reflect but does not repeat the edge sample (index -1
// reads index 1, index n reads index n-2).
func Mirror() Mode { return Mode{kind: KindMirror} }

// IsValid reports whether m is a legal, non-zero continuation mode.
func (m Mode) IsValid() bool { return m.kind != kindNone }

// ConstantValue returns the fill value for a KindConstant mode (0 for any
// other kind).
func (m Mode) ConstantValue() float64 { return m.value }

// Kind returns the mode's tag.
func (m Mode) Kind() Kind { return m.kind }

// MapIndex rewrites a possibly out-of-range index i along an axis of
// extent n (n > 0) under the continuation policy. ok is false for
// KindConstant when i is out of range — the caller should use the mode's
// ConstantValue() instead of reading the backing storage.
func (m Mode) MapIndex(i, n int) (mapped int, ok bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch m.kind {
	case KindConstant:
		return 0, false
	case KindCyclic, KindPseudoCyclic:
		mapped = i % n
		if mapped < 0 {
			mapped += n
		}

		return mapped, true
	case KindReflect:
		return reflectIndex(i, n, false), true
	case KindMirror:
		return reflectIndex(i, n, true), true
	default:
		return 0, false
	}
}

// reflectIndex folds i back into [0, n) by bouncing off both boundaries.
// includeEdge=false repeats the edge sample (Reflect, period 2n); true
// bounces off the edge sample without repeating it (Mirror, period 2n-2).
func reflectIndex(i, n int, includeEdge bool) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	if includeEdge {
		period = 2*n - 2
	}
	i %= period
	if i < 0 {
		i += period
	}
	if includeEdge {
		if i < n {
			return i
		}

		return period - i
	}
	if i < n {
		return i
	}

	return period - 1 - i
}

// Aperture is the per-axis (before, after) expansion an aperture-based
// processor needs beyond its nominal input extent.
type Aperture struct {
	Before []int
	After  []int
}

// Processor is any aperture-based transform: an input matrix, zero or more
// additional matrices, and a shape descriptor, per spec §4.7.
type Processor interface {
	// RequiredAperture returns the per-axis expansion this processor
	// needs on its primary input.
	RequiredAperture() Aperture
	// Apply runs the processor over inputs (primary first) already
	// extended by RequiredAperture(), producing an output of shape
	// outputShape.
	Apply(inputs []Extendable, outputShape []int) (Extendable, error)
}

// Extendable is the minimal read-only surface Continued needs from a
// matrix: its extents and element reads. Extend and Crop build padded and
// cropped views over it. Package matrix's Dense and lazy views both satisfy
// this.
type Extendable interface {
	DimCount() int
	Dim(k int) int
	Get(index []int) (float64, error)
}

// Continued wraps a Processor with a chosen continuation Mode, handling the
// aperture extension/cropping dance described in spec §4.7.
type Continued struct {
	inner Processor
	mode  Mode
}

// NewContinued constructs a Continued wrapper. mode must be a valid,
// non-zero Mode (spec §4.7 "Rejected mode: NONE is not legal").
func NewContinued(inner Processor, mode Mode) (*Continued, error) {
	if inner == nil {
		return nil, continuationErrorf(opNewContinued, errs.ErrInvalidArgument)
	}
	if !mode.IsValid() {
		return nil, continuationErrorf(opNewContinued, errs.ErrInvalidArgument)
	}

	return &Continued{inner: inner, mode: mode}, nil
}

// Mode returns the wrapper's continuation policy.
func (c *Continued) Mode() Mode { return c.mode }

// Aperture forwards the wrapped processor's required expansion.
func (c *Continued) Aperture() Aperture { return c.inner.RequiredAperture() }
