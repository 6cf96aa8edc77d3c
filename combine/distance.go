// SPDX-License-Identifier: MIT
package combine

import (
	"math"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/transform"
)

// NearestFrame picks, among frames with a non-NaN sample at a point, the
// raw sample of the frame whose footprint has the smallest parallel
// distance to that point. Ties are broken toward the later frame: the
// running-minimum comparison uses "<=", never "<" (spec §9, §8 property 8).
type NearestFrame struct {
	Default    float64
	Footprints []*area.Area
}

// NewNearestFrame validates that footprints is non-empty.
func NewNearestFrame(defaultValue float64, footprints []*area.Area) (*NearestFrame, error) {
	if len(footprints) == 0 {
		return nil, combineErrorf(opNewNearestFrame, errs.ErrInvalidArgument)
	}

	return &NearestFrame{Default: defaultValue, Footprints: footprints}, nil
}

func (r *NearestFrame) Get(coords []float64, samples []float64) float64 {
	return nearestGet(coords, samples, r.Footprints, r.Default, identityPoint)
}

func (*NearestFrame) SimpleForEmptySpace() bool  { return true }
func (*NearestFrame) SimpleForSingleFrame() bool { return true }
func (*NearestFrame) CoordinateFree() bool       { return false }
func (r *NearestFrame) OutsideValue() float64    { return r.Default }

// NearestFrameUniversal is NearestFrame's variant for frames positioned by
// a non-shift transform: each frame's inverse transform is applied to the
// query point before consulting that frame's footprint (spec §4.5).
type NearestFrameUniversal struct {
	Default    float64
	Footprints []*area.Area
	Inverses   []transform.Transform
}

// NewNearestFrameUniversal validates matching slice lengths.
func NewNearestFrameUniversal(defaultValue float64, footprints []*area.Area, inverses []transform.Transform) (*NearestFrameUniversal, error) {
	if len(footprints) == 0 || len(footprints) != len(inverses) {
		return nil, combineErrorf(opNewNearestFrame, errs.ErrInvalidArgument)
	}

	return &NearestFrameUniversal{Default: defaultValue, Footprints: footprints, Inverses: inverses}, nil
}

func (r *NearestFrameUniversal) Get(coords []float64, samples []float64) float64 {
	return nearestGet(coords, samples, r.Footprints, r.Default, func(i int, p []float64) []float64 {
		return mapThroughInverse(r.Inverses[i], p)
	})
}

func (*NearestFrameUniversal) SimpleForEmptySpace() bool  { return true }
func (*NearestFrameUniversal) SimpleForSingleFrame() bool { return true }
func (*NearestFrameUniversal) CoordinateFree() bool       { return false }
func (r *NearestFrameUniversal) OutsideValue() float64    { return r.Default }

func identityPoint(_ int, p []float64) []float64 { return p }

func mapThroughInverse(t transform.Transform, p []float64) []float64 {
	out := make([]float64, len(p))
	if err := t.InverseMap(out, p); err != nil {
		// an unmappable point can never be nearer than a mappable one;
		// push it to +inf on every axis so it never wins the tie-break.
		for k := range out {
			out[k] = math.Inf(1)
		}
	}

	return out
}

func nearestGet(coords, samples []float64, footprints []*area.Area, def float64, remap func(int, []float64) []float64) float64 {
	found := false
	bestDist := math.Inf(1)
	bestVal := def
	for i, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		p := remap(i, coords)
		d, err := footprints[i].ParallelDistance(p)
		if err != nil {
			continue
		}
		if !found || d <= bestDist {
			found = true
			bestDist = d
			bestVal = v
		}
	}
	if !found {
		return def
	}

	return bestVal
}

// WeightedFrames blends every interior contributor's sample by depth into
// its footprint, using a seamless inverse-distance kernel (spec §4.5, §8
// property 7). The footprint consulted for depth is each stored footprint
// shifted by −0.5 along every axis, matching the source's half-pixel
// boundary convention.
//
// BoundaryEpsilon widens the interior test from the default "d < 0" to
// "d < BoundaryEpsilon" and weights each contributor by BoundaryEpsilon - d,
// so with a positive epsilon abutting frames (d == 0 exactly) still
// contribute instead of falling through to Default (spec §9 first open
// question).
type WeightedFrames struct {
	Default         float64
	BoundaryEpsilon float64
	footprints      []*area.Area // pre-shifted by -0.5 per axis
}

// NewWeightedFrames shifts every footprint by -0.5 on construction so Get
// never repeats that work per call.
func NewWeightedFrames(defaultValue, boundaryEpsilon float64, footprints []*area.Area) (*WeightedFrames, error) {
	shifted, err := shiftFootprints(footprints)
	if err != nil {
		return nil, combineErrorf(opNewWeightedFrames, err)
	}

	return &WeightedFrames{Default: defaultValue, BoundaryEpsilon: boundaryEpsilon, footprints: shifted}, nil
}

func shiftFootprints(footprints []*area.Area) ([]*area.Area, error) {
	if len(footprints) == 0 {
		return nil, errs.ErrInvalidArgument
	}
	out := make([]*area.Area, len(footprints))
	for i, f := range footprints {
		half := make([]float64, f.DimCount())
		for k := range half {
			half[k] = -0.5
		}
		shifted, err := f.Shift(half)
		if err != nil {
			return nil, err
		}
		out[i] = shifted
	}

	return out, nil
}

func (r *WeightedFrames) Get(coords []float64, samples []float64) float64 {
	return weightedGet(coords, samples, r.footprints, r.Default, r.BoundaryEpsilon, identityPoint)
}

func (*WeightedFrames) SimpleForEmptySpace() bool  { return true }
func (*WeightedFrames) SimpleForSingleFrame() bool { return true }
func (*WeightedFrames) CoordinateFree() bool       { return false }
func (r *WeightedFrames) OutsideValue() float64    { return r.Default }

// WeightedFramesUniversal is WeightedFrames's variant for non-shift frame
// positions (spec §4.5).
type WeightedFramesUniversal struct {
	Default         float64
	BoundaryEpsilon float64
	footprints      []*area.Area
	Inverses        []transform.Transform
}

// NewWeightedFramesUniversal validates matching slice lengths and
// pre-shifts every footprint by -0.5 per axis.
func NewWeightedFramesUniversal(defaultValue, boundaryEpsilon float64, footprints []*area.Area, inverses []transform.Transform) (*WeightedFramesUniversal, error) {
	if len(footprints) != len(inverses) {
		return nil, combineErrorf(opNewWeightedFrames, errs.ErrInvalidArgument)
	}
	shifted, err := shiftFootprints(footprints)
	if err != nil {
		return nil, combineErrorf(opNewWeightedFrames, err)
	}

	return &WeightedFramesUniversal{Default: defaultValue, BoundaryEpsilon: boundaryEpsilon, footprints: shifted, Inverses: inverses}, nil
}

func (r *WeightedFramesUniversal) Get(coords []float64, samples []float64) float64 {
	return weightedGet(coords, samples, r.footprints, r.Default, r.BoundaryEpsilon, func(i int, p []float64) []float64 {
		return mapThroughInverse(r.Inverses[i], p)
	})
}

func (*WeightedFramesUniversal) SimpleForEmptySpace() bool  { return true }
func (*WeightedFramesUniversal) SimpleForSingleFrame() bool { return true }
func (*WeightedFramesUniversal) CoordinateFree() bool       { return false }
func (r *WeightedFramesUniversal) OutsideValue() float64    { return r.Default }

func weightedGet(coords, samples []float64, footprints []*area.Area, def, epsilon float64, remap func(int, []float64) []float64) float64 {
	sum, weightSum := 0.0, 0.0
	for i, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		p := remap(i, coords)
		d, err := footprints[i].ParallelDistance(p)
		if err != nil {
			continue
		}
		d -= epsilon // widen the interior outward by epsilon
		if d >= 0 {
			continue // exterior or outside the epsilon-widened boundary
		}
		w := -d
		sum += w * v
		weightSum += w
	}
	if weightSum == 0 {
		return def
	}

	return sum / weightSum
}
