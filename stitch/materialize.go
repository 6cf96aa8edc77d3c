// SPDX-License-Identifier: MIT
package stitch

import (
	"context"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/frame"
	"github.com/katalvlaran/stitchcore/matrix"
	"github.com/katalvlaran/stitchcore/progress"
)

// Stitch materializes the stitcher's composite into dest: for every
// destination index p, dest[p] = composite(offset + p). tileDims[k] <= 0
// means "the whole dimension"; the destination is walked tile-by-tile in
// row-major tile order (spec §4.4.1, §4.4.3).
func (s *Stitcher) Stitch(ctx context.Context, dest matrix.Updatable, offset []int, tileDims []int, handle progress.Handle) error {
	if dest == nil || dest.DimCount() != s.dimCount || len(offset) != s.dimCount || len(tileDims) != s.dimCount {
		return stitchErrorf(opStitch, errs.ErrInvalidArgument)
	}
	if handle == nil {
		handle = progress.Noop
	}

	destDims := dest.Dimensions()
	effectiveTile := make([]int, s.dimCount)
	tileCount := make([]int, s.dimCount)
	for k := 0; k < s.dimCount; k++ {
		t := tileDims[k]
		if t <= 0 {
			t = destDims[k]
		}
		effectiveTile[k] = t
		tileCount[k] = ceilDiv(destDims[k], t)
	}

	return forEachIndex(tileCount, func(tileIdx []int) error {
		if ctx.Err() != nil {
			return stitchErrorf(opStitch, errs.ErrCancelled)
		}
		if handle.IsCancelled() {
			return stitchErrorf(opStitch, errs.ErrCancelled)
		}

		tileFrom := make([]int, s.dimCount)
		tileTo := make([]int, s.dimCount)
		tileDimsLocal := make([]int, s.dimCount)
		areaMin := make([]float64, s.dimCount)
		areaMax := make([]float64, s.dimCount)
		for k := 0; k < s.dimCount; k++ {
			from := tileIdx[k] * effectiveTile[k]
			to := from + effectiveTile[k]
			if to > destDims[k] {
				to = destDims[k]
			}
			tileFrom[k] = from
			tileTo[k] = to
			tileDimsLocal[k] = to - from
			areaMin[k] = float64(offset[k] + from)
			areaMax[k] = float64(offset[k] + to)
		}

		tileArea, err := area.New(areaMin, areaMax)
		if err != nil {
			return stitchErrorf(opStitch, err)
		}

		return s.stitchTile(tileArea, dest, tileFrom, tileDimsLocal, handle)
	})
}

func (s *Stitcher) stitchTile(tileArea *area.Area, dest matrix.Updatable, tileFrom, tileDims []int, handle progress.Handle) error {
	localFrames, err := s.ActualFrames(tileArea)
	if err != nil {
		return stitchErrorf(opStitch, err)
	}

	fast := len(localFrames) == 0 && s.method.SimpleForEmptySpace() ||
		len(localFrames) == 1 && s.method.SimpleForSingleFrame() ||
		(shiftPositions(localFrames) && integerOffsets(localFrames, tileArea.Min()) && s.method.CoordinateFree())

	usedFrames := localFrames
	preloaded := false
	if !fast {
		total := aggregateBytes(localFrames)
		destBytes := int64(tileElementCount(tileDims)) * int64(dest.ElementType().Size())
		if total > 0 && total <= s.ramBudgetBytes && float64(destBytes) >= preloadFraction*float64(total) {
			usedFrames = preloadFrames(localFrames)
			preloaded = true
		}
	}

	preloadHandle := handle.Part(0, 0.3)
	if preloadHandle.IsCancelled() {
		return stitchErrorf(opStitch, errs.ErrCancelled)
	}

	built, path, err := buildTile(s.method, usedFrames, tileArea)
	if err != nil {
		return stitchErrorf(opStitch, err)
	}
	if s.logger != nil {
		s.logger.Debug("stitch_tile", "area_min", tileArea.Min(), "area_max", tileArea.Max(),
			"frames", len(usedFrames), "path", path, "preloaded", preloaded)
	}

	copyHandle := handle.Part(0.3, 1.0)
	if err := forEachIndex(tileDims, func(localIdx []int) error {
		if copyHandle.IsCancelled() {
			return stitchErrorf(opStitch, errs.ErrCancelled)
		}
		v, err := built.Get(localIdx)
		if err != nil {
			return stitchErrorf(opStitch, err)
		}
		destIdx := make([]int, len(localIdx))
		for k, x := range localIdx {
			destIdx[k] = tileFrom[k] + x
		}

		return dest.Set(destIdx, v)
	}); err != nil {
		return err
	}

	if preloaded {
		for _, f := range usedFrames {
			f.ReleaseResources()
		}
	}

	return nil
}

func aggregateBytes(frames []*frame.Frame) int64 {
	var total int64
	for _, f := range frames {
		count := tileElementCount(f.Matrix.Dimensions())
		total += int64(count) * int64(f.Matrix.ElementType().Size())
	}

	return total
}

func tileElementCount(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}

	return n
}

// preloadFrames clones every frame whose matrix supports it (matrix.Dense)
// into a fresh in-memory buffer, per spec §4.4.3 step 3; frames whose
// backing storage cannot be cloned pass through unchanged.
func preloadFrames(frames []*frame.Frame) []*frame.Frame {
	out := make([]*frame.Frame, len(frames))
	for i, f := range frames {
		if d, ok := f.Matrix.(*matrix.Dense); ok {
			out[i] = f.WithMatrix(d.Clone())
		} else {
			out[i] = f
		}
	}

	return out
}
