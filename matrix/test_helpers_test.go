// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/magicsq/matrix"
	"github.com/stretchr/testify/require"
)

// magicConstant is the line sum of the reference grid.
const magicConstant = 3301

// mustMatrix builds a Matrix or fails the test.
func mustMatrix(t *testing.T, grid [][]int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(grid)
	require.NoError(t, err)

	return m
}

// reference returns the default 5×5 grid as a Matrix.
func reference(t *testing.T) *matrix.Matrix {
	t.Helper()

	return mustMatrix(t, matrix.ReferenceGrid())
}

// seq returns an n×n grid filled with 1..n² row-major.
func seq(n int) [][]int {
	g := make([][]int, n)
	v := 1
	for i := range g {
		g[i] = make([]int, n)
		for j := range g[i] {
			g[i][j] = v
			v++
		}
	}

	return g
}
