// SPDX-License-Identifier: MIT

// Package matrix provides the read-only and updatable n-dimensional matrix
// accessor surfaces (spec §6) and Dense, their in-memory reference
// implementation.
//
// Dense generalizes the 2-D float64-only row-major storage of a typical
// small dense-matrix type to n dimensions and to eight primitive element
// types (i8/u8/i16/u16/i32/u32/f32/f64), keeping the same bounds-checked
// At/Set-style access pattern under Get/Set and the same Clone-for-
// immutability convention.
package matrix
