// SPDX-License-Identifier: MIT
package stitch

import (
	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/continuation"
	"github.com/katalvlaran/stitchcore/matrix"
)

// typedView re-labels an underlying lazy Matrix's ElementType without
// touching its values — AsStitched's contract promises "elements of the
// requested primitive type"; narrowing to that type only happens when the
// view is eventually copied into a concrete typed destination (Stitch),
// matching spec §3's "the matrix layer does not clamp silently beyond what
// a numeric conversion already does".
type typedView struct {
	matrix.Matrix
	elemType matrix.ElementType
}

func (t *typedView) ElementType() matrix.ElementType { return t.elemType }

func (t *typedView) SubMatrix(from, to []int, mode continuation.Mode) (matrix.Matrix, error) {
	inner, err := t.Matrix.SubMatrix(from, to, mode)
	if err != nil {
		return nil, err
	}

	return &typedView{Matrix: inner, elemType: t.elemType}, nil
}

// AsStitched returns a lazy, coordinate-addressable composite view over a,
// with elements tagged as requestedType and dimensions a.Size() (spec
// §4.4.1). The view is built once, selecting the same execution path a
// Stitch call over the identical area would use.
func (s *Stitcher) AsStitched(requestedType matrix.ElementType, a *area.Area) (matrix.Matrix, error) {
	frames, err := s.ActualFrames(a)
	if err != nil {
		return nil, stitchErrorf(opAsStitched, err)
	}
	built, path, err := buildTile(s.method, frames, a)
	if err != nil {
		return nil, stitchErrorf(opAsStitched, err)
	}
	if s.logger != nil {
		s.logger.Debug("as_stitched", "area_min", a.Min(), "area_max", a.Max(), "frames", len(frames), "path", path)
	}

	return &typedView{Matrix: built, elemType: requestedType}, nil
}
