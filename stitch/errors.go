// SPDX-License-Identifier: MIT
package stitch

import "fmt"

const (
	opNew          = "New"
	opActualFrames = "ActualFrames"
	opAsStitched   = "AsStitched"
	opStitch       = "Stitch"
	opStitchParallel = "StitchParallel"
)

func stitchErrorf(op string, err error) error {
	return fmt.Errorf("stitch.%s: %w", op, err)
}
