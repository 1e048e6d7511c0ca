// SPDX-License-Identifier: MIT

// Package matrix provides the immutable N×N integer grid analyzed by magicsq.
//
// 🚀 What is a Matrix here?
//
//	A square grid of ints, stored row-major in a single flat slice, that is
//	validated once at construction and never mutated afterwards. Every view
//	(rows, columns, diagonals, transpose, rotations, spiral order) is a pure
//	function that returns fresh storage, so derived data can never drift from
//	the source grid.
//
// ✨ Key features:
//   - New validates shape (N ≥ 1, rectangular, square) and fails with ErrInvalidShape.
//   - Views: Row, Column, Flatten, Transpose, MainDiagonal, AntiDiagonal,
//     RotateLeft90, Rotate180, SpiralOrder.
//   - Validators: IsMagicSquare, HasPointSymmetry.
//   - Statistics: RowSums, ColumnSums, DiagonalSums, MagicConstant, Total,
//     Min, Max, UniqueValues.
//   - Parse reads the text grid format (whitespace- or comma-separated rows).
//
// Determinism:
//
//	All loops run in fixed i→j order; no maps are iterated when producing
//	ordered output.
//
// ⚙️ Usage:
//
//	m, err := matrix.New(matrix.ReferenceGrid())
//	if err != nil {
//		// errors.Is(err, matrix.ErrInvalidShape)
//	}
//	fmt.Println(m.IsMagicSquare(), m.HasPointSymmetry())
package matrix
