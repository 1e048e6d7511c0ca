// SPDX-License-Identifier: MIT

package transform_test

import (
	"fmt"

	"github.com/katalvlaran/magicsq/transform"
)

// ExampleParse builds a chain from its textual form and applies it.
func ExampleParse() {
	c, err := transform.Parse("mod:256,rotl:1")
	if err != nil {
		panic(err)
	}
	fmt.Println(c, c.Apply([]int{626, 620, 809}))
	// Output:
	// mod:256,rotl:1 [108 41 114]
}
