// SPDX-License-Identifier: MIT

// Package extract produces ordered position and value sequences from a
// matrix.Matrix according to named strategies.
//
// Strategies:
//   - stride:            start, start+n, start+2n, … over any view
//   - transposed-stride: stride over the flattened transpose
//   - flat, row, column, diagonal, anti-diagonal, spiral, rotated views
//   - keyed:             code point of each key character mod L
//
// Sweep enumerates every (stride, start) pair of a stride range in ascending
// stride, then ascending start, order. The order is part of the contract:
// repeated runs over the same Matrix yield identical slices.
//
// No strategy returns an error for a structurally valid Matrix; errors are
// reserved for invalid Spec parameters (stride < 1, start out of bounds, row
// or column index outside the grid).
package extract
