// SPDX-License-Identifier: MIT
// Dense is a concrete, row-major (last axis fastest) implementation of
// Matrix over n dimensions, generalizing the teacher matrix package's 2-D
// flat-slice Dense to an arbitrary rank and to all eight primitive element
// types. Exactly one of the typed backing slices is allocated, selected by
// the requested ElementType; Get/Set convert through it with ordinary Go
// numeric-conversion semantics (zero-extend for unsigned reads, truncation
// toward zero for writes).
package matrix

import (
	"math"

	"github.com/katalvlaran/stitchcore/continuation"
	"github.com/katalvlaran/stitchcore/errs"
)

// maxElementCount guards against allocations that would overflow a
// platform int (spec §7 TooLargeResult).
const maxElementCount = math.MaxInt32

// Dense is a row-major n-dimensional matrix over one primitive element
// type. The zero value is not usable; construct with NewDense.
type Dense struct {
	dims     []int
	strides  []int
	elemType ElementType

	i8  []int8
	u8  []uint8
	i16 []int16
	u16 []uint16
	i32 []int32
	u32 []uint32
	f32 []float32
	f64 []float64
}

// NewDense allocates a zero-initialized Dense matrix of the given
// dimensions and element type.
//
// Stage 1 (Validate): dims must be non-empty, every extent > 0, and the
// total element count must fit within the platform index limit.
// Stage 2 (Prepare): compute row-major strides (last axis fastest).
// Stage 3 (Finalize): allocate the one backing slice selected by elemType.
func NewDense(dims []int, elemType ElementType) (*Dense, error) {
	if len(dims) == 0 {
		return nil, matrixErrorf(opNewDense, errs.ErrInvalidArgument)
	}
	total := 1
	for _, d := range dims {
		if d <= 0 {
			return nil, matrixErrorf(opNewDense, errs.ErrInvalidArgument)
		}
		if total > maxElementCount/d {
			return nil, matrixErrorf(opNewDense, errs.ErrTooLargeResult)
		}
		total *= d
	}

	strides := make([]int, len(dims))
	acc := 1
	for k := len(dims) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= dims[k]
	}

	d := &Dense{dims: append([]int(nil), dims...), strides: strides, elemType: elemType}
	switch elemType {
	case I8:
		d.i8 = make([]int8, total)
	case U8:
		d.u8 = make([]uint8, total)
	case I16:
		d.i16 = make([]int16, total)
	case U16:
		d.u16 = make([]uint16, total)
	case I32:
		d.i32 = make([]int32, total)
	case U32:
		d.u32 = make([]uint32, total)
	case F32:
		d.f32 = make([]float32, total)
	case F64:
		d.f64 = make([]float64, total)
	default:
		return nil, matrixErrorf(opNewDense, errs.ErrElementTypeUnsupported)
	}

	return d, nil
}

func (d *Dense) DimCount() int        { return len(d.dims) }
func (d *Dense) Dim(k int) int        { return d.dims[k] }
func (d *Dense) Dimensions() []int    { return append([]int(nil), d.dims...) }
func (d *Dense) ElementType() ElementType { return d.elemType }

func (d *Dense) flatIndex(index []int) (int, error) {
	if len(index) != len(d.dims) {
		return 0, errs.ErrInvalidArgument
	}
	flat := 0
	for k, idx := range index {
		if idx < 0 || idx >= d.dims[k] {
			return 0, errs.ErrInvalidArgument
		}
		flat += idx * d.strides[k]
	}

	return flat, nil
}

// Get returns the canonical float64 value at index.
func (d *Dense) Get(index []int) (float64, error) {
	flat, err := d.flatIndex(index)
	if err != nil {
		return 0, matrixErrorf(opGet, err)
	}

	switch d.elemType {
	case I8:
		return float64(d.i8[flat]), nil
	case U8:
		return float64(d.u8[flat]), nil
	case I16:
		return float64(d.i16[flat]), nil
	case U16:
		return float64(d.u16[flat]), nil
	case I32:
		return float64(d.i32[flat]), nil
	case U32:
		return float64(d.u32[flat]), nil
	case F32:
		return float64(d.f32[flat]), nil
	default: // F64
		return d.f64[flat], nil
	}
}

// Set writes value at index, narrowing to the matrix's element type with
// ordinary Go numeric-conversion truncation.
func (d *Dense) Set(index []int, value float64) error {
	flat, err := d.flatIndex(index)
	if err != nil {
		return matrixErrorf(opSet, err)
	}

	switch d.elemType {
	case I8:
		d.i8[flat] = int8(value)
	case U8:
		d.u8[flat] = uint8(value)
	case I16:
		d.i16[flat] = int16(value)
	case U16:
		d.u16[flat] = uint16(value)
	case I32:
		d.i32[flat] = int32(value)
	case U32:
		d.u32[flat] = uint32(value)
	case F32:
		d.f32[flat] = float32(value)
	default: // F64
		d.f64[flat] = value
	}

	return nil
}

// AsRawSlice exposes the backing storage directly (zero-copy) when t
// matches the matrix's own element type.
func (d *Dense) AsRawSlice(t ElementType) (any, bool) {
	if t != d.elemType {
		return nil, false
	}
	switch t {
	case I8:
		return d.i8, true
	case U8:
		return d.u8, true
	case I16:
		return d.i16, true
	case U16:
		return d.u16, true
	case I32:
		return d.i32, true
	case U32:
		return d.u32, true
	case F32:
		return d.f32, true
	default:
		return d.f64, true
	}
}

// Clone returns a deep copy of the matrix.
func (d *Dense) Clone() *Dense {
	out := &Dense{dims: append([]int(nil), d.dims...), strides: append([]int(nil), d.strides...), elemType: d.elemType}
	out.i8 = append([]int8(nil), d.i8...)
	out.u8 = append([]uint8(nil), d.u8...)
	out.i16 = append([]int16(nil), d.i16...)
	out.u16 = append([]uint16(nil), d.u16...)
	out.i32 = append([]int32(nil), d.i32...)
	out.u32 = append([]uint32(nil), d.u32...)
	out.f32 = append([]float32(nil), d.f32...)
	out.f64 = append([]float64(nil), d.f64...)

	return out
}

// SubMatrix returns a lazy view over [from, to); out-of-range accesses
// relative to d's own extents resolve through mode.
func (d *Dense) SubMatrix(from, to []int, mode continuation.Mode) (Matrix, error) {
	return newSubMatrix(d, from, to, mode)
}
