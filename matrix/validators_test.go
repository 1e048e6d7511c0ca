// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMagicSquare(t *testing.T) {
	t.Parallel()

	perturbed := reference(t).Grid()
	perturbed[0][0]++

	// Rows and columns agree, diagonals do not.
	semi := [][]int{{1, 2}, {2, 1}}

	tests := []struct {
		name      string
		grid      [][]int
		wantMagic bool
		wantConst int
	}{
		{"reference", reference(t).Grid(), true, magicConstant},
		{"lo-shu", [][]int{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}}, true, 15},
		{"1x1", [][]int{{42}}, true, 42},
		{"perturbed", perturbed, false, 0},
		{"semi-magic", semi, false, 0},
		{"sequence", seq(3), false, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustMatrix(t, tc.grid)
			assert.Equal(t, tc.wantMagic, m.IsMagicSquare())
			c, ok := m.MagicConstant()
			assert.Equal(t, tc.wantMagic, ok)
			assert.Equal(t, tc.wantConst, c)
		})
	}
}

func TestHasPointSymmetry(t *testing.T) {
	t.Parallel()

	assert.True(t, reference(t).HasPointSymmetry())
	assert.True(t, mustMatrix(t, [][]int{{5}}).HasPointSymmetry())
	assert.True(t, mustMatrix(t, [][]int{{1, 2}, {2, 1}}).HasPointSymmetry())
	assert.False(t, mustMatrix(t, seq(3)).HasPointSymmetry())

	g := reference(t).Grid()
	g[0][1] = 0
	assert.False(t, mustMatrix(t, g).HasPointSymmetry())
}
