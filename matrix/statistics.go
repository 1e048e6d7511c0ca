// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Basic aggregate properties of a grid used by the validation section of a report.
//
// Exposed API:
//   - RowSums / ColumnSums  -> []int   // len = N
//   - DiagonalSums          -> (main, anti)
//   - Total / Min / Max     -> int
//   - UniqueValues          -> []int   // ascending, no duplicates
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - UniqueValues sorts its output, so callers never see map order.

package matrix

import (
	"slices"
)

// RowSums returns the sum of each row, top to bottom.
func (m *Matrix) RowSums() []int {
	out := make([]int, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		base := i * m.n
		for j = 0; j < m.n; j++ {
			out[i] += m.data[base+j]
		}
	}

	return out
}

// ColumnSums returns the sum of each column, left to right.
func (m *Matrix) ColumnSums() []int {
	out := make([]int, m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		base := i * m.n
		for j = 0; j < m.n; j++ {
			out[j] += m.data[base+j]
		}
	}

	return out
}

// DiagonalSums returns the main-diagonal and anti-diagonal sums.
func (m *Matrix) DiagonalSums() (main, anti int) {
	for i := 0; i < m.n; i++ {
		main += m.at(i, i)
		anti += m.at(i, m.n-1-i)
	}

	return main, anti
}

// Total returns the sum of all cells.
func (m *Matrix) Total() int {
	var s int
	for _, v := range m.data {
		s += v
	}

	return s
}

// Min returns the smallest cell value.
func (m *Matrix) Min() int { return slices.Min(m.data) }

// Max returns the largest cell value.
func (m *Matrix) Max() int { return slices.Max(m.data) }

// UniqueValues returns the distinct cell values in ascending order.
// Complexity: O(n² log n).
func (m *Matrix) UniqueValues() []int {
	out := slices.Clone(m.data)
	slices.Sort(out)

	return slices.Compact(out)
}
