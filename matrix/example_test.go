// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/magicsq/matrix"
)

// ExampleMatrix_IsMagicSquare validates the reference grid.
func ExampleMatrix_IsMagicSquare() {
	m := matrix.MustNew(matrix.ReferenceGrid())
	c, ok := m.MagicConstant()
	fmt.Println(ok, c, m.HasPointSymmetry())
	// Output:
	// true 3301 true
}

// ExampleMatrix_SpiralOrder peels a 3×3 grid clockwise.
func ExampleMatrix_SpiralOrder() {
	m := matrix.MustNew([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	fmt.Println(m.SpiralOrder())
	// Output:
	// [1 2 3 6 9 8 7 4 5]
}

// ExampleMatrix_RotateLeft90 shows the counter-clockwise rotation rule.
func ExampleMatrix_RotateLeft90() {
	m := matrix.MustNew([][]int{{1, 2}, {3, 4}})
	fmt.Print(m.RotateLeft90())
	// Output:
	//    2    4
	//    1    3
}
