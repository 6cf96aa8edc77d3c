// SPDX-License-Identifier: MIT
// Package progress implements the context/progress external interface
// (spec §6): a cooperative cancellation and sub-range progress-reporting
// handle passed down into a long-running Stitch call.
package progress

import "sync/atomic"

// Handle lets a caller observe and cancel a long-running operation, and
// lets that operation hand a fractional sub-range of its own progress
// budget down to a nested call (spec §6's Handle.Part).
type Handle interface {
	// Part returns a child handle that reports into the [a, b] sub-range
	// of this handle's own [0, 1] progress range. a and b must satisfy
	// 0 <= a <= b <= 1.
	Part(a, b float64) Handle
	// IsCancelled reports whether the operation should stop early.
	IsCancelled() bool
}

// root is the top-level Handle: it owns the shared cancellation flag and
// the current fraction-complete value. Safe for concurrent use from the
// tiled-stitch worker goroutines (spec §5 "thread-compatible").
type root struct {
	cancelled *atomic.Bool
	fraction  *atomic.Uint64 // bits of a float64 in [0, 1]
}

// New returns a fresh, not-yet-cancelled root Handle.
func New() Handle {
	return &root{cancelled: &atomic.Bool{}, fraction: &atomic.Uint64{}}
}

// Cancel marks the handle and every Part derived from it as cancelled.
func (r *root) Cancel() { r.cancelled.Store(true) }

func (r *root) IsCancelled() bool { return r.cancelled.Load() }

func (r *root) Part(a, b float64) Handle {
	return &scoped{root: r, a: clamp01(a), b: clamp01(b)}
}

// scoped is a sub-range view over a root's cancellation flag; Part nests
// further by remapping [a, b] into the parent's own [a, b] window.
type scoped struct {
	root *root
	a, b float64
}

func (s *scoped) IsCancelled() bool { return s.root.IsCancelled() }

func (s *scoped) Part(a, b float64) Handle {
	span := s.b - s.a

	return &scoped{root: s.root, a: s.a + clamp01(a)*span, b: s.a + clamp01(b)*span}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Noop is a Handle that is never cancelled and whose Part calls are free —
// the default when a caller has no cancellation or progress-reporting
// need (spec §6: the context/progress interface is optional plumbing).
var Noop Handle = noop{}

type noop struct{}

func (noop) Part(_, _ float64) Handle { return noop{} }
func (noop) IsCancelled() bool        { return false }
