// SPDX-License-Identifier: MIT
// Package errs defines the sentinel error set shared by every stitchcore
// package. Algorithms MUST return these sentinels (wrapped with operation
// context via fmt.Errorf("%s: %w", op, Err...)) and tests MUST check them
// via errors.Is. Panics are reserved for programmer errors in unexported
// helpers that are only reachable from already-validated callers.
package errs

import "errors"

var (
	// ErrInvalidArgument covers null/empty required inputs, mismatched
	// dim_count between frames/destination/offset/tile-size, dim_count<=0,
	// channel counts outside the image-adapter's 1-4 range, and Mode{}
	// (the zero continuation mode) passed to the continuation wrapper.
	ErrInvalidArgument = errors.New("stitchcore: invalid argument")

	// ErrInvalidArea covers min>max along some axis, zero coordinate
	// count, or dimensionality above the 63-axis ceiling.
	ErrInvalidArea = errors.New("stitchcore: invalid area")

	// ErrElementTypeUnsupported is returned when a matrix element type is
	// not supported by the chosen destination.
	ErrElementTypeUnsupported = errors.New("stitchcore: element type unsupported")

	// ErrTooLargeResult is returned when a requested rectangle's total
	// element count, or an intermediate buffer, would exceed the
	// platform's index limit.
	ErrTooLargeResult = errors.New("stitchcore: result too large")

	// ErrIO wraps an underlying I/O failure surfaced from a matrix
	// accessor.
	ErrIO = errors.New("stitchcore: io error")

	// ErrCancelled is returned when the progress handle signals
	// cancellation mid-stitch.
	ErrCancelled = errors.New("stitchcore: cancelled")
)
