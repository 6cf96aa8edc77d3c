// SPDX-License-Identifier: MIT
// Package stitch implements the stitcher (C6): an immutable collection of
// positioned frames plus a stitching method, exposing a lazy
// coordinate-addressable composite view (AsStitched) and an eager tiled
// materialization into a caller-provided destination (Stitch).
package stitch

import (
	"log/slog"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/combine"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/frame"
)

// DefaultRAMBudgetBytes bounds how much frame data the tiled materializer
// will preload into memory per tile before falling back to per-sample
// reads against the frames' own backing storage (spec §4.4.3).
const DefaultRAMBudgetBytes int64 = 256 << 20

// preloadFraction is the minimum ratio of tile-destination size to
// aggregate local-frame size required before preloading kicks in — the
// "30% heuristic" of spec §4.4.3, which exists to avoid preloading frames
// a tile barely samples from.
const preloadFraction = 0.30

// Stitcher is an immutable (dim_count, method, frame list) triple. Frames
// are borrowed, never copied, except transiently during tiled
// materialization's preloading step (spec §9 "Ownership").
type Stitcher struct {
	dimCount       int
	method         combine.Method
	frames         []*frame.Frame
	ramBudgetBytes int64
	logger         *slog.Logger
}

// Option configures a Stitcher at construction time.
type Option func(*Stitcher)

// WithRAMBudgetBytes overrides DefaultRAMBudgetBytes.
func WithRAMBudgetBytes(n int64) Option {
	return func(s *Stitcher) { s.ramBudgetBytes = n }
}

// WithLogger attaches a structured logger used only at tile-boundary
// granularity (one debug line per tile: rectangle, frame count, fast path
// chosen) — never per-sample (spec §7 ambient logging policy).
func WithLogger(l *slog.Logger) Option {
	return func(s *Stitcher) { s.logger = l }
}

// New validates dimCount and frame dimensionality consistency and returns
// an immutable Stitcher.
func New(dimCount int, method combine.Method, frames []*frame.Frame, opts ...Option) (*Stitcher, error) {
	if dimCount <= 0 || method == nil {
		return nil, stitchErrorf(opNew, errs.ErrInvalidArgument)
	}
	for _, f := range frames {
		if f == nil || f.Position.Area().DimCount() != dimCount {
			return nil, stitchErrorf(opNew, errs.ErrInvalidArgument)
		}
	}

	s := &Stitcher{
		dimCount:       dimCount,
		method:         method,
		frames:         append([]*frame.Frame(nil), frames...),
		ramBudgetBytes: DefaultRAMBudgetBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// DimCount returns the stitcher's dimensionality.
func (s *Stitcher) DimCount() int { return s.dimCount }

// ActualFrames filters the stitcher's frames to those whose footprint
// overlaps a, returning a fresh slice in insertion order (spec §4.4.1).
func (s *Stitcher) ActualFrames(a *area.Area) ([]*frame.Frame, error) {
	if a == nil || a.DimCount() != s.dimCount {
		return nil, stitchErrorf(opActualFrames, errs.ErrInvalidArgument)
	}
	out := make([]*frame.Frame, 0, len(s.frames))
	for _, f := range s.frames {
		ok, err := f.Position.Area().Overlaps(a)
		if err != nil {
			return nil, stitchErrorf(opActualFrames, err)
		}
		if ok {
			out = append(out, f)
		}
	}

	return out, nil
}

// FreeResources best-effort releases every frame's underlying storage.
func (s *Stitcher) FreeResources() {
	for _, f := range s.frames {
		f.ReleaseResources()
	}
}

// FootprintsOf returns each frame's destination-space footprint in frame
// order — the slice distance-aware combine.Method constructors
// (NewNearestFrame, NewWeightedFrames, …) expect, built in the same order
// as the frames passed to New so method and Stitcher stay aligned.
func FootprintsOf(frames []*frame.Frame) []*area.Area {
	out := make([]*area.Area, len(frames))
	for i, f := range frames {
		out[i] = f.Position.Area()
	}

	return out
}
