// SPDX-License-Identifier: MIT
// Package combine implements the stitching-function family (C5): NaN-
// skipping reducers and the two distance-aware reducers that consult
// package area's parallel distance to give weighted and nearest-frame
// stitching their seamless falloff and tie-break semantics.
//
// Every Method is conceptually pure: Get(coords, samples) depends only on
// its arguments. Distance-aware methods additionally hold immutable
// per-frame footprint metadata captured at construction time (spec §3
// "Stitching function").
package combine

import "math"

// Method maps a destination point and the per-frame sample vector at that
// point to a single output value (spec §4.5).
type Method interface {
	// Get computes the stitched value. len(samples) == the number of
	// frames considered at this point; entries are NaN for frames that
	// do not contribute.
	Get(coords []float64, samples []float64) float64
	// SimpleForEmptySpace, if true, means an empty frame set yields
	// OutsideValue() everywhere (fast path 1).
	SimpleForEmptySpace() bool
	// SimpleForSingleFrame, if true, means a lone frame may be returned
	// directly as a submatrix (fast path 2).
	SimpleForSingleFrame() bool
	// CoordinateFree, if true, means the reducer ignores coords entirely
	// and the stitcher may use the submatrix-composition fast path
	// (fast path 3).
	CoordinateFree() bool
	// OutsideValue is the method's result for an empty sample list at
	// the origin — the constant fill used by fast path 1.
	OutsideValue() float64
}

// countNotNaN returns how many samples are not NaN. The reducers in this
// package do their own NaN skipping and do not call it.
func countNotNaN(samples []float64) int {
	n := 0
	for _, v := range samples {
		if !math.IsNaN(v) {
			n++
		}
	}

	return n
}
