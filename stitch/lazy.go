// SPDX-License-Identifier: MIT
package stitch

import (
	"github.com/katalvlaran/stitchcore/combine"
	"github.com/katalvlaran/stitchcore/continuation"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/matrix"
)

// constMatrix implements path 1: every index yields the same value,
// without touching any frame.
type constMatrix struct {
	dims  []int
	value float64
}

func (m *constMatrix) DimCount() int            { return len(m.dims) }
func (m *constMatrix) Dim(k int) int            { return m.dims[k] }
func (m *constMatrix) Dimensions() []int        { return append([]int(nil), m.dims...) }
func (m *constMatrix) ElementType() matrix.ElementType { return matrix.F64 }

func (m *constMatrix) Get(index []int) (float64, error) {
	if len(index) != len(m.dims) {
		return 0, stitchErrorf(opStitch, errs.ErrInvalidArgument)
	}

	return m.value, nil
}

func (m *constMatrix) SubMatrix(from, to []int, mode continuation.Mode) (matrix.Matrix, error) {
	return matrix.NewSubMatrixView(m, from, to, mode)
}

// funcMatrix wraps an arbitrary per-index function — used by the
// single-frame universal fast path and the fully general combiner path,
// where the value at each index is computed on demand rather than read
// from an existing backing buffer.
type funcMatrix struct {
	dims     []int
	elemType matrix.ElementType
	fn       func(index []int) (float64, error)
}

func (m *funcMatrix) DimCount() int                    { return len(m.dims) }
func (m *funcMatrix) Dim(k int) int                    { return m.dims[k] }
func (m *funcMatrix) Dimensions() []int                { return append([]int(nil), m.dims...) }
func (m *funcMatrix) ElementType() matrix.ElementType  { return m.elemType }

func (m *funcMatrix) Get(index []int) (float64, error) {
	if len(index) != len(m.dims) {
		return 0, stitchErrorf(opStitch, errs.ErrInvalidArgument)
	}

	return m.fn(index)
}

func (m *funcMatrix) SubMatrix(from, to []int, mode continuation.Mode) (matrix.Matrix, error) {
	return matrix.NewSubMatrixView(m, from, to, mode)
}

// combinedMatrix implements path 3: each frame has already been rewritten
// as a translated, NaN-continued submatrix view over the tile's index
// space, so combining is a pure elementwise reduction with no per-sample
// coordinate computation (spec §4.4.2 "coordinate-free optimization").
type combinedMatrix struct {
	dims    []int
	method  combine.Method
	sources []matrix.Matrix
	origin  []float64 // kept only so Get can report a coords value; unused by coordinate-free methods
}

func (m *combinedMatrix) DimCount() int                   { return len(m.dims) }
func (m *combinedMatrix) Dim(k int) int                   { return m.dims[k] }
func (m *combinedMatrix) Dimensions() []int               { return append([]int(nil), m.dims...) }
func (m *combinedMatrix) ElementType() matrix.ElementType { return matrix.F64 }

func (m *combinedMatrix) Get(index []int) (float64, error) {
	if len(index) != len(m.dims) {
		return 0, stitchErrorf(opStitch, errs.ErrInvalidArgument)
	}
	samples := make([]float64, len(m.sources))
	for i, src := range m.sources {
		v, err := src.Get(index)
		if err != nil {
			return 0, stitchErrorf(opStitch, err)
		}
		samples[i] = v
	}
	coords := addVecInt(m.origin, index)

	return m.method.Get(coords, samples), nil
}

func (m *combinedMatrix) SubMatrix(from, to []int, mode continuation.Mode) (matrix.Matrix, error) {
	return matrix.NewSubMatrixView(m, from, to, mode)
}
