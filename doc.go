// SPDX-License-Identifier: MIT

// Package stitchcore composes many positioned n-dimensional matrices —
// "frames" — into one addressable composite, without ever materializing
// the whole thing unless asked to.
//
// The pieces:
//
//	area/         — axis-aligned n-D rectangles and parallel distance
//	transform/    — shift, affine, and general coordinate mappings
//	continuation/ — out-of-bounds fill policies (constant, cyclic, reflect, ...)
//	matrix/       — the n-D Matrix interface and its dense implementation
//	frame/        — a matrix plus where it sits in destination space
//	combine/      — stitching methods: how overlapping samples become one value
//	progress/     — cooperative cancellation and progress reporting
//	stitch/       — the composite itself: lazy views and tiled materialization
//	config/       — process-wide defaults, loadable from YAML
//
// A minimal composite over two frames:
//
//	s, err := stitch.New(2, combine.FirstNotNaN{Default: 0}, []*frame.Frame{a, b})
//	view, err := s.AsStitched(matrix.F64, destinationArea)
//
// For output sizes that don't fit in memory at once, Stitch and
// StitchParallel materialize tile-by-tile into a caller-owned destination.
package stitchcore
