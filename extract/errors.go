// SPDX-License-Identifier: MIT

package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStride indicates a stride below 1 or a start offset outside [0, min(n, bound)).
	ErrInvalidStride = errors.New("extract: invalid stride or start")

	// ErrInvalidView indicates an unknown view kind or a row/column index outside the grid.
	ErrInvalidView = errors.New("extract: invalid view")

	// ErrInvalidRange indicates a sweep range with StrideMin < 1 or StrideMax < StrideMin.
	ErrInvalidRange = errors.New("extract: invalid stride range")

	// ErrUnknownStrategy indicates a Spec whose Strategy is not recognized.
	ErrUnknownStrategy = errors.New("extract: unknown strategy")
)

func extractErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
