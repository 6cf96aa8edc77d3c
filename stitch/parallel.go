// SPDX-License-Identifier: MIT
package stitch

import (
	"context"

	"github.com/katalvlaran/stitchcore/area"
	"github.com/katalvlaran/stitchcore/errs"
	"github.com/katalvlaran/stitchcore/matrix"
	"github.com/katalvlaran/stitchcore/progress"
	"golang.org/x/sync/errgroup"
)

// StitchParallel is Stitch's concurrent counterpart: it enumerates the
// same tile grid and runs up to workers tiles at once via
// errgroup.Group.SetLimit. Each goroutine writes to a disjoint
// destination index range — tile rectangles partition the destination, so
// no two goroutines ever touch the same cell (spec §5). Cancelling ctx
// makes every tile that has not started yet return ErrCancelled; a tile
// already running checks only handle, so it completes unless handle is
// cancelled too.
func (s *Stitcher) StitchParallel(ctx context.Context, dest matrix.Updatable, offset []int, tileDims []int, workers int, handle progress.Handle) error {
	if dest == nil || dest.DimCount() != s.dimCount || len(offset) != s.dimCount || len(tileDims) != s.dimCount {
		return stitchErrorf(opStitchParallel, errs.ErrInvalidArgument)
	}
	if workers <= 0 {
		workers = 1
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

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	err := forEachIndex(tileCount, func(tileIdx []int) error {
		idxCopy := append([]int(nil), tileIdx...)
		group.Go(func() error {
			if gctx.Err() != nil {
				return stitchErrorf(opStitchParallel, errs.ErrCancelled)
			}

			tileFrom := make([]int, s.dimCount)
			tileTo := make([]int, s.dimCount)
			tileDimsLocal := make([]int, s.dimCount)
			areaMin := make([]float64, s.dimCount)
			areaMax := make([]float64, s.dimCount)
			for k := 0; k < s.dimCount; k++ {
				from := idxCopy[k] * effectiveTile[k]
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
				return stitchErrorf(opStitchParallel, err)
			}

			return s.stitchTile(tileArea, dest, tileFrom, tileDimsLocal, handle)
		})

		return nil
	})
	if err != nil {
		return err
	}

	return group.Wait()
}
