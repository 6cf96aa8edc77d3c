// SPDX-License-Identifier: MIT
package stitch

import (
	"math"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/combine"
	"github.com/katalvlaran/stitchcore/continuation"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/frame"
	"github.com/katalvlaran/stitchcore/matrix"
)

// pathConstant, pathSingleFrame, pathCoordinateFree, and pathGeneral name
// the four execution paths of spec §4.4.2, for logging only.
const (
	pathConstant       = "constant"
	pathSingleFrame    = "single-frame"
	pathCoordinateFree = "coordinate-free"
	pathGeneral        = "general"
)

// buildTile selects and builds the tile's composite Matrix view over
// tileArea (an integer-cornered destination rectangle), following the
// four-way execution-path decision of spec §4.4.2. The returned string
// names the path taken, for tile-boundary logging only.
func buildTile(method combine.Method, frames []*frame.Frame, tileArea *area.Area) (matrix.Matrix, string, error) {
	box, ok := tileArea.ToIntegerBox()
	if !ok {
		return nil, "", stitchErrorf(opStitch, errs.ErrInvalidArea)
	}
	dims := make([]int, len(box.Min))
	for k := range dims {
		dims[k] = box.Max[k] - box.Min[k]
	}

	// path 1: constant fill
	if len(frames) == 0 && method.SimpleForEmptySpace() {
		return &constMatrix{dims: dims, value: method.OutsideValue()}, pathConstant, nil
	}

	// path 2: single-frame fast path
	if len(frames) == 1 && method.SimpleForSingleFrame() {
		m, err := buildSingleFrame(method, frames[0], tileArea, dims)
		if err != nil {
			return nil, "", err
		}

		return m, pathSingleFrame, nil
	}

	// path 3: coordinate-free submatrix composition
	if shiftPositions(frames) && integerOffsets(frames, tileArea.Min()) && method.CoordinateFree() {
		m, err := buildCoordinateFree(method, frames, tileArea, dims)
		if err != nil {
			return nil, "", err
		}

		return m, pathCoordinateFree, nil
	}

	// path 4: general combiner
	m, err := buildGeneral(method, frames, tileArea, dims)
	if err != nil {
		return nil, "", err
	}

	return m, pathGeneral, nil
}

func shiftPositions(frames []*frame.Frame) bool {
	for _, f := range frames {
		if !f.Position.IsShift() {
			return false
		}
	}

	return true
}

// integerOffsets reports whether every frame's shift is integer once
// re-anchored to origin (spec §4.4.2 "integer_offsets").
func integerOffsets(frames []*frame.Frame, origin []float64) bool {
	for _, f := range frames {
		rel := subVec(f.Position.ShiftOrigin(), origin)
		if !isIntegerVec(rel) {
			return false
		}
	}

	return true
}

func buildSingleFrame(method combine.Method, f *frame.Frame, tileArea *area.Area, dims []int) (matrix.Matrix, error) {
	if f.Position.IsShift() {
		rel := subVec(f.Position.ShiftOrigin(), tileArea.Min())
		if isIntegerVec(rel) {
			relInt := toIntVec(rel)
			from := make([]int, len(relInt))
			to := make([]int, len(relInt))
			for k := range relInt {
				from[k] = -relInt[k]
				to[k] = from[k] + dims[k]
			}

			return matrix.NewSubMatrixView(f.Matrix, from, to, continuation.Constant(method.OutsideValue()))
		}
	}

	sampler, err := f.Sampler()
	if err != nil {
		return nil, stitchErrorf(opStitch, err)
	}
	outside := method.OutsideValue()
	origin := tileArea.Min()
	fn := func(localIdx []int) (float64, error) {
		global := addVecInt(origin, localIdx)
		v := sampler(global)
		if math.IsNaN(v) {
			return outside, nil
		}

		return v, nil
	}

	return &funcMatrix{dims: dims, elemType: matrix.F64, fn: fn}, nil
}

func buildCoordinateFree(method combine.Method, frames []*frame.Frame, tileArea *area.Area, dims []int) (matrix.Matrix, error) {
	views := make([]matrix.Matrix, len(frames))
	for i, f := range frames {
		rel := subVec(f.Position.ShiftOrigin(), tileArea.Min())
		relInt := toIntVec(rel)
		from := make([]int, len(relInt))
		to := make([]int, len(relInt))
		for k := range relInt {
			from[k] = -relInt[k]
			to[k] = from[k] + dims[k]
		}
		view, err := matrix.NewSubMatrixView(f.Matrix, from, to, continuation.Constant(math.NaN()))
		if err != nil {
			return nil, stitchErrorf(opStitch, err)
		}
		views[i] = view
	}

	return &combinedMatrix{dims: dims, method: method, sources: views, origin: tileArea.Min()}, nil
}

func buildGeneral(method combine.Method, frames []*frame.Frame, tileArea *area.Area, dims []int) (matrix.Matrix, error) {
	samplers := make([]frame.SampleFunc, len(frames))
	for i, f := range frames {
		sampler, err := f.Sampler()
		if err != nil {
			return nil, stitchErrorf(opStitch, err)
		}
		samplers[i] = sampler
	}
	origin := tileArea.Min()
	fn := func(localIdx []int) (float64, error) {
		global := addVecInt(origin, localIdx)
		samples := make([]float64, len(samplers))
		for i, sample := range samplers {
			samples[i] = sample(global)
		}

		return method.Get(global, samples), nil
	}

	return &funcMatrix{dims: dims, elemType: matrix.F64, fn: fn}, nil
}

func subVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for k := range a {
		out[k] = a[k] - b[k]
	}

	return out
}

func addVecInt(base []float64, idx []int) []float64 {
	out := make([]float64, len(base))
	for k := range base {
		out[k] = base[k] + float64(idx[k])
	}

	return out
}

func isIntegerVec(v []float64) bool {
	for _, x := range v {
		if x != math.Trunc(x) {
			return false
		}
	}

	return true
}

func toIntVec(v []float64) []int {
	out := make([]int, len(v))
	for k, x := range v {
		out[k] = int(x)
	}

	return out
}
