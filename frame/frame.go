// SPDX-License-Identifier: MIT
package frame

import (
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/matrix"
)

// Frame is the immutable pair (source matrix, frame position) (spec §3/§4.4
// "C4"). Frames are borrowed by a Stitcher for the duration of an
// operation; callers may explicitly ReleaseResources to hint the
// underlying storage may be closed.
type Frame struct {
	Matrix   matrix.Matrix
	Position *Position
}

// New constructs a Frame from a matrix and its destination-space position.
func New(m matrix.Matrix, pos *Position) (*Frame, error) {
	if m == nil || pos == nil {
		return nil, frameErrorf("New", errs.ErrInvalidArgument)
	}

	return &Frame{Matrix: m, Position: pos}, nil
}

// Sampler returns this frame's lazy sampling function (spec §4.6).
func (f *Frame) Sampler() (SampleFunc, error) {
	return f.Position.AsInterpolationFunc(f.Matrix)
}

// ReleaseResources best-effort releases the underlying matrix's storage if
// it implements matrix.Releasable; otherwise it is a no-op.
func (f *Frame) ReleaseResources() {
	if r, ok := f.Matrix.(matrix.Releasable); ok {
		r.Release()
	}
}

// WithMatrix returns a shallow copy of f with its matrix replaced — used by
// the stitcher when preloading frames into in-memory clones (spec §4.4.3).
func (f *Frame) WithMatrix(m matrix.Matrix) *Frame {
	return &Frame{Matrix: m, Position: f.Position}
}
