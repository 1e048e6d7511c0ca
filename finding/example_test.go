// SPDX-License-Identifier: MIT

package finding_test

import (
	"fmt"

	"github.com/katalvlaran/magicsq/finding"
)

func ExampleAggregator() {
	a := finding.NewAggregator()
	a.Add(finding.Finding{Tag: finding.TagPalindrome, Payload: "[620 809 620]"})
	a.Add(finding.Finding{Tag: finding.TagPalindrome, Payload: "[620 809 620]"})
	a.Add(finding.Finding{Tag: finding.TagPrime, Payload: "809"})
	for _, c := range a.Counts() {
		fmt.Println(c.Tag, c.Count)
	}
	// Output:
	// palindrome 1
	// prime 1
}
