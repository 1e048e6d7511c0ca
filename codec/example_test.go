// SPDX-License-Identifier: MIT

package codec_test

import (
	"fmt"

	"github.com/katalvlaran/magicsq/codec"
)

// ExampleEncode decodes the middle row of the reference grid.
func ExampleEncode() {
	r := codec.Encode([]int{626, 620, 809, 620, 626}, codec.Mod256)
	fmt.Printf("%s %.1f %v\n", r.Text, r.Score, codec.IsHighValidity(r.Score, codec.DefaultThreshold))
	// Output:
	// rl)lr 1.0 true
}
