// SPDX-License-Identifier: MIT

package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/magicsq/engine"
	"github.com/katalvlaran/magicsq/finding"
	"github.com/katalvlaran/magicsq/matrix"
)

// ExampleEngine_Run prints the transposed-stride findings of the reference grid.
func ExampleEngine_Run() {
	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		panic(err)
	}
	res, err := e.Run(context.Background(), matrix.MustNew(matrix.ReferenceGrid()))
	if err != nil {
		panic(err)
	}
	for _, f := range res.ByTag(finding.TagTransposedStride) {
		fmt.Printf("%s %q %.1f\n", f.Candidate.Spec, f.Candidate.Text, f.Score)
	}
	// Output:
	// transposed-stride n=5 start=0 "..8.." 0.2
	// transposed-stride n=5 start=1 ".,../" 0.4
	// transposed-stride n=5 start=2 "rl)lr" 1.0
	// transposed-stride n=5 start=3 "/..,." 0.4
	// transposed-stride n=5 start=4 "..8.." 0.2
}
