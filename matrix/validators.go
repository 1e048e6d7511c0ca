// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks over a Matrix.
//  - Keep the extraction and reporting layers free of ad hoc sum/symmetry loops.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate at most O(n).
//  - Symmetry check visits each cell once and short-circuits on the first mismatch.
//
// AI-Hints:
//  - IsMagicSquare compares every line sum against the first row sum.
//  - MagicConstant returns (sum, true) only when IsMagicSquare holds.

package matrix

// IsMagicSquare reports whether every row sum, every column sum and both
// diagonal sums are equal.
//
// Implementation:
//   - Stage 1: take row 0's sum as the reference.
//   - Stage 2: compare remaining rows, all columns, then both diagonals.
//
// Complexity: Time O(n²), Space O(n).
func (m *Matrix) IsMagicSquare() bool {
	_, ok := m.MagicConstant()

	return ok
}

// MagicConstant returns the common line sum and true when m is a magic square;
// otherwise it returns (0, false).
func (m *Matrix) MagicConstant() (int, bool) {
	rows := m.RowSums()
	target := rows[0]
	for _, s := range rows[1:] {
		if s != target {
			return 0, false
		}
	}
	for _, s := range m.ColumnSums() {
		if s != target {
			return 0, false
		}
	}
	main, anti := m.DiagonalSums()
	if main != target || anti != target {
		return 0, false
	}

	return target, true
}

// HasPointSymmetry reports whether grid[i][j] == grid[N-1-i][N-1-j] for all i, j,
// i.e. the grid is invariant under a 180° rotation.
// Complexity: O(n²) worst case; early exit on first mismatch.
func (m *Matrix) HasPointSymmetry() bool {
	last := len(m.data) - 1
	// The reflection of flat index k is last-k; checking the first half suffices.
	for k := 0; k <= last/2; k++ {
		if m.data[k] != m.data[last-k] {
			return false
		}
	}

	return true
}
