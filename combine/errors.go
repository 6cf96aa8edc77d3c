// SPDX-License-Identifier: MIT
package combine

import (
	"fmt"

	"github.com/katalvlaran/stitchcore/errs"
)

const (
	opNewNearestFrame   = "NewNearestFrame"
	opNewWeightedFrames = "NewWeightedFrames"
)

func combineErrorf(op string, err error) error {
	return fmt.Errorf("combine.%s: %w", op, err)
}

// re-exported for callers that only import package combine.
var (
	ErrInvalidArgument = errs.ErrInvalidArgument
)
