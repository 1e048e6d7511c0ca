// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All constructors and
// accessors return these sentinels (optionally wrapped with call-site context)
// and tests check them via errors.Is. No function panics on user input except
// the Must* helpers, which exist for literals known to be valid.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are greppable.
// Call sites wrap with matrixErrorf(tag, err); callers still match with errors.Is.

var (
	// ErrInvalidShape is returned when a grid has no rows, rows of differing
	// length, or a row count that differs from the column count.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row, column or cell index is outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrParse indicates that a textual grid contains a token that is not an integer.
	ErrParse = errors.New("matrix: cannot parse grid")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
