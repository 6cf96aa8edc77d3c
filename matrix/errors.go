// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"github.com/katalvlaran/stitchcore/errs"
)

const (
	opNewDense     = "NewDense"
	opGet          = "Get"
	opSet          = "Set"
	opSubMatrix    = "SubMatrix"
	opAsRawSlice   = "AsRawSlice"
)

func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// reexported here so callers of this package can errors.Is against a
// single, package-documented set without importing errs directly.
var (
	ErrInvalidArgument        = errs.ErrInvalidArgument
	ErrTooLargeResult         = errs.ErrTooLargeResult
	ErrElementTypeUnsupported = errs.ErrElementTypeUnsupported
)
