// SPDX-License-Identifier: MIT
// Package matrix implements the external matrix-accessor surfaces (§6) and
// an in-memory reference implementation (Dense) of them: a read-only,
// n-dimensional, element-wise-indexable buffer over one of eight primitive
// numeric element types, plus the updatable (writable) variant used as the
// destination of a Stitch.
package matrix

import "github.com/katalvlaran/stitchcore/continuation"

// ElementType identifies the primitive numeric type backing a Matrix.
type ElementType int

const (
	I8 ElementType = iota
	U8
	I16
	U16
	I32
	U32
	F32
	F64
)

// elementSizes is indexed by ElementType; kept as a table rather than a
// switch so adding a type can't silently fall through to size 0.
var elementSizes = [...]int{
	I8:  1,
	U8:  1,
	I16: 2,
	U16: 2,
	I32: 4,
	U32: 4,
	F32: 4,
	F64: 8,
}

// Size returns the element's width in bytes.
func (t ElementType) Size() int {
	if int(t) < 0 || int(t) >= len(elementSizes) {
		return 0
	}

	return elementSizes[t]
}

// elementNames mirrors elementSizes for String().
var elementNames = [...]string{
	I8: "i8", U8: "u8", I16: "i16", U16: "u16",
	I32: "i32", U32: "u32", F32: "f32", F64: "f64",
}

// String returns a short, log-friendly name for the element type.
func (t ElementType) String() string {
	if int(t) < 0 || int(t) >= len(elementNames) {
		return "unknown"
	}

	return elementNames[t]
}

// Matrix is a read-only, n-dimensional, element-wise-indexable numeric
// buffer (spec §6 "Matrix accessor").
type Matrix interface {
	// DimCount returns the number of axes.
	DimCount() int
	// Dim returns the extent of axis k.
	Dim(k int) int
	// Dimensions returns a copy of every axis extent.
	Dimensions() []int
	// ElementType returns the primitive type backing storage.
	ElementType() ElementType
	// Get returns the canonical float64 value at index, zero-extending
	// unsigned types and sign-extending signed types.
	Get(index []int) (float64, error)
	// SubMatrix returns a lazy view over [from, to) with bounds-checking
	// deferred until access; out-of-range accesses resolve through mode.
	SubMatrix(from, to []int, mode continuation.Mode) (Matrix, error)
}

// RawSliceAccessor is implemented by matrices that can expose their
// backing storage as a native Go slice without copying, when the caller's
// requested element type matches the matrix's own (spec §6 "Optional
// as_raw_slice").
type RawSliceAccessor interface {
	AsRawSlice(t ElementType) (data any, ok bool)
}

// Updatable extends Matrix with Set, used as the destination of Stitch.
type Updatable interface {
	Matrix
	Set(index []int, value float64) error
}

// Releasable is implemented by matrices whose backing storage can be
// hinted closed (e.g. a memory-mapped file) once a caller is done
// sampling from it.
type Releasable interface {
	Release()
}
