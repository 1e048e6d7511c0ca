// SPDX-License-Identifier: MIT

package transform

import "errors"

var (
	// ErrInvalidStep indicates a non-positive modulus or a negative rotation amount.
	ErrInvalidStep = errors.New("transform: invalid step")

	// ErrParse indicates a chain expression that cannot be parsed.
	ErrParse = errors.New("transform: cannot parse chain")
)
