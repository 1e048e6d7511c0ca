// SPDX-License-Identifier: MIT
// Package matrix - immutable square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Row/Column return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never expose the backing slice: every accessor copies.
//
// Complexity quicksheet:
//   - New: O(n²) copy; At: O(1); Row/Column: O(n); Grid/Flatten: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxAt     = "At"
	ctxRow    = "Row"
	ctxColumn = "Column"
	ctxParse  = "Parse"
)

// ---------- Formatting literals ----------

const (
	_fmtCellWidth = 4
	_fmtSep       = " "
)

// referenceGrid is the 5×5 magic square (magic constant 3301) analyzed by default.
var referenceGrid = [][]int{
	{434, 1311, 312, 278, 966},
	{204, 812, 934, 280, 1071},
	{626, 620, 809, 620, 626},
	{1071, 280, 934, 812, 204},
	{966, 278, 312, 1311, 434},
}

// ReferenceGrid returns a fresh copy of the default 5×5 grid.
// The copy can be mutated freely by the caller.
func ReferenceGrid() [][]int {
	out := make([][]int, len(referenceGrid))
	for i, row := range referenceGrid {
		out[i] = append([]int(nil), row...)
	}

	return out
}

// Matrix is an immutable N×N integer grid.
//   - n holds the side length (rows == cols == n, n ≥ 1).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// The zero value is not usable; construct with New.
type Matrix struct {
	n    int   // side length
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New validates grid and returns an immutable Matrix holding a copy of it.
//
// Implementation:
//   - Stage 1: reject len(grid) < 1.
//   - Stage 2: reject any row whose length differs from len(grid).
//   - Stage 3: copy rows into a single flat row-major buffer.
//
// Errors:
//   - ErrInvalidShape (wrapped with "New: row k") on any shape violation.
//
// Determinism:
//   - Rows are validated and copied in index order; the first offending row is reported.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(grid [][]int) (*Matrix, error) {
	// Stage 1 (Validate): at least one row.
	n := len(grid)
	if n < 1 {
		return nil, matrixErrorf(ctxNew, ErrInvalidShape)
	}

	// Stage 2 (Validate): rectangular and square.
	var i int
	for i = 0; i < n; i++ {
		if len(grid[i]) != n {
			return nil, matrixErrorf(fmt.Sprintf("%s: row %d has %d values, want %d", ctxNew, i, len(grid[i]), n), ErrInvalidShape)
		}
	}

	// Stage 3 (Copy): flatten into owned storage.
	data := make([]int, 0, n*n)
	for i = 0; i < n; i++ {
		data = append(data, grid[i]...)
	}

	return &Matrix{n: n, data: data}, nil
}

// MustNew is like New but panics on error. Use only for literals known to be valid.
func MustNew(grid [][]int) *Matrix {
	m, err := New(grid)
	if err != nil {
		panic(err)
	}

	return m
}

// fromFlat wraps an already-owned row-major buffer; callers guarantee len(data) == n*n.
func fromFlat(n int, data []int) *Matrix {
	return &Matrix{n: n, data: data}
}

// Size returns N, the side length.
func (m *Matrix) Size() int { return m.n }

// Len returns N*N, the number of cells.
func (m *Matrix) Len() int { return len(m.data) }

// At returns the value at (i, j).
// Errors: ErrOutOfRange when i or j is outside [0, N).
func (m *Matrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, matrixErrorf(fmt.Sprintf("%s(%d,%d)", ctxAt, i, j), ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// at is the unchecked accessor used by views once bounds are known.
func (m *Matrix) at(i, j int) int { return m.data[i*m.n+j] }

// Grid returns a deep copy of the matrix as a slice of rows.
func (m *Matrix) Grid() [][]int {
	out := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// Equal reports whether m and o have the same size and identical cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders the grid as right-aligned fixed-width columns, one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%*d", _fmtCellWidth, m.at(i, j))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
