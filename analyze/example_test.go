// SPDX-License-Identifier: MIT

package analyze_test

import (
	"fmt"

	"github.com/katalvlaran/magicsq/analyze"
)

func ExampleFactorize() {
	fmt.Println(analyze.Factorize(626), analyze.IsPrime(809), analyze.DigitalRoot(1311))
	// Output:
	// [2 313] true 6
}

func ExamplePalindromes() {
	for _, p := range analyze.Palindromes([]int{1, 620, 809, 620, 2}, 3, 7) {
		fmt.Println(p.Start, p.Length, p.Values)
	}
	// Output:
	// 1 3 [620 809 620]
}
