// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Derived read-only views of a Matrix: rows, columns, diagonals, flatten,
//     transpose, rotations and spiral order.
//
// Determinism & Policy:
//   - Every view allocates fresh storage; none aliases the backing buffer.
//   - Nothing is cached: two calls recompute the same result from the source grid.
//
// AI-Hints:
//   - Flatten is row-major; Transpose().Flatten() is column-major of the original.
//   - Rotate180 equals the original iff HasPointSymmetry.

package matrix

import "fmt"

// Row returns a copy of row i.
// Errors: ErrOutOfRange for i outside [0, N).
func (m *Matrix) Row(i int) ([]int, error) {
	if i < 0 || i >= m.n {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d)", ctxRow, i), ErrOutOfRange)
	}

	return append([]int(nil), m.data[i*m.n:(i+1)*m.n]...), nil
}

// Column returns a copy of column j, top to bottom.
// Errors: ErrOutOfRange for j outside [0, N).
func (m *Matrix) Column(j int) ([]int, error) {
	if j < 0 || j >= m.n {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d)", ctxColumn, j), ErrOutOfRange)
	}
	out := make([]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// Flatten returns all cells in row-major order.
// Complexity: O(n²).
func (m *Matrix) Flatten() []int {
	return append([]int(nil), m.data...)
}

// Transpose returns a new Matrix t with t[j][i] = m[i][j].
//
// Implementation:
//   - Stage 1: allocate n*n buffer.
//   - Stage 2: fixed i→j scatter into the transposed offset j*n + i.
//
// Complexity: O(n²).
func (m *Matrix) Transpose() *Matrix {
	n := m.n
	out := make([]int, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[j*n+i] = m.data[i*n+j]
		}
	}

	return fromFlat(n, out)
}

// MainDiagonal returns m[i][i] for i = 0..N-1.
func (m *Matrix) MainDiagonal() []int {
	out := make([]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.at(i, i)
	}

	return out
}

// AntiDiagonal returns m[i][N-1-i] for i = 0..N-1.
func (m *Matrix) AntiDiagonal() []int {
	out := make([]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.at(i, m.n-1-i)
	}

	return out
}

// RotateLeft90 returns the grid rotated 90° counter-clockwise:
// rotated[N-1-j][i] = original[i][j].
//
// Four applications return a Matrix equal to the original.
// Complexity: O(n²).
func (m *Matrix) RotateLeft90() *Matrix {
	n := m.n
	out := make([]int, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[(n-1-j)*n+i] = m.data[i*n+j]
		}
	}

	return fromFlat(n, out)
}

// Rotate180 returns the grid rotated by 180°: rotated[N-1-i][N-1-j] = original[i][j].
// It is RotateLeft90 applied twice, computed in one pass (row-major reversal).
func (m *Matrix) Rotate180() *Matrix {
	last := len(m.data) - 1
	out := make([]int, len(m.data))
	for k, v := range m.data {
		out[last-k] = v
	}

	return fromFlat(m.n, out)
}

// SpiralOrder peels the grid ring by ring, clockwise, starting at the top-left:
// top row left→right, right column downward, bottom row right→left, left
// column upward, then repeats on the inner ring until every cell is consumed.
//
// Implementation:
//   - Stage 1: track the live window [top,bottom]×[left,right].
//   - Stage 2: emit each side only while the window is non-empty, so single
//     rows and single columns are never emitted twice.
//
// Complexity: O(n²), each cell emitted exactly once.
func (m *Matrix) SpiralOrder() []int {
	out := make([]int, 0, len(m.data))
	top, bottom := 0, m.n-1
	left, right := 0, m.n-1
	var i, j int
	for top <= bottom && left <= right {
		for j = left; j <= right; j++ { // top row
			out = append(out, m.at(top, j))
		}
		top++
		for i = top; i <= bottom; i++ { // right column
			out = append(out, m.at(i, right))
		}
		right--
		if top <= bottom {
			for j = right; j >= left; j-- { // bottom row, reversed
				out = append(out, m.at(bottom, j))
			}
			bottom--
		}
		if left <= right {
			for i = bottom; i >= top; i-- { // left column, upward
				out = append(out, m.at(i, left))
			}
			left++
		}
	}

	return out
}
