// SPDX-License-Identifier: MIT
package matrix

import (
	"github.com/katalvlaran/stitchcore/continuation"
	"github.com/katalvlaran/stitchcore/errs"
)

// subMatrix is the lazy view returned by SubMatrix: bounds-checking is
// deferred until Get, and out-of-range reads resolve through a
// continuation.Mode instead of erroring.
type subMatrix struct {
	src  Matrix
	from []int
	dims []int
	mode continuation.Mode
}

func newSubMatrix(src Matrix, from, to []int, mode continuation.Mode) (*subMatrix, error) {
	n := src.DimCount()
	if len(from) != n || len(to) != n {
		return nil, matrixErrorf(opSubMatrix, errs.ErrInvalidArgument)
	}
	if !mode.IsValid() {
		return nil, matrixErrorf(opSubMatrix, errs.ErrInvalidArgument)
	}
	dims := make([]int, n)
	for k := 0; k < n; k++ {
		if to[k] < from[k] {
			return nil, matrixErrorf(opSubMatrix, errs.ErrInvalidArea)
		}
		dims[k] = to[k] - from[k]
	}

	return &subMatrix{src: src, from: append([]int(nil), from...), dims: dims, mode: mode}, nil
}

func (s *subMatrix) DimCount() int            { return len(s.dims) }
func (s *subMatrix) Dim(k int) int            { return s.dims[k] }
func (s *subMatrix) Dimensions() []int        { return append([]int(nil), s.dims...) }
func (s *subMatrix) ElementType() ElementType { return s.src.ElementType() }

func (s *subMatrix) Get(index []int) (float64, error) {
	if len(index) != len(s.dims) {
		return 0, matrixErrorf(opGet, errs.ErrInvalidArgument)
	}
	srcIndex := make([]int, len(index))
	for k, idx := range index {
		logical := idx + s.from[k]
		mapped, ok := s.mode.MapIndex(logical, s.src.Dim(k))
		if !ok {
			return s.mode.ConstantValue(), nil
		}
		srcIndex[k] = mapped
	}

	return s.src.Get(srcIndex)
}

func (s *subMatrix) SubMatrix(from, to []int, mode continuation.Mode) (Matrix, error) {
	return newSubMatrix(s, from, to, mode)
}

// NewSubMatrixView builds a lazy windowed view over any Matrix implementation
// (not only Dense), resolving out-of-range reads through mode. Package stitch
// uses this to wrap a single frame's matrix as a translated, continuation-aware
// view during the single-frame fast path (spec §4.4.2).
func NewSubMatrixView(src Matrix, from, to []int, mode continuation.Mode) (Matrix, error) {
	return newSubMatrix(src, from, to, mode)
}
