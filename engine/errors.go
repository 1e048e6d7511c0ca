// SPDX-License-Identifier: MIT

package engine

import "errors"

var (
	// ErrInvalidConfig indicates an engine Config that fails Validate.
	ErrInvalidConfig = errors.New("engine: invalid config")

	// ErrNilMatrix indicates Run was called without a matrix.
	ErrNilMatrix = errors.New("engine: nil matrix")
)
