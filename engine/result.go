// SPDX-License-Identifier: MIT

package engine

import (
	"time"

	"github.com/katalvlaran/magicsq/finding"
	"github.com/katalvlaran/magicsq/matrix"
)

// Validation summarizes the structural properties of the analyzed matrix.
type Validation struct {
	Size            int
	IsMagic         bool
	MagicConstant   int
	PointSymmetric  bool
	Rotate180Equal  bool
	RowSums         []int
	ColumnSums      []int
	MainDiagonalSum int
	AntiDiagonalSum int
	Total           int
	Min             int
	Max             int
	UniqueValues    []int
}

// Result is the outcome of one Run.
type Result struct {
	RunID      string
	Matrix     *matrix.Matrix
	Validation Validation
	Threshold  float64
	// Findings holds every accepted finding in insertion order.
	Findings []finding.Finding
	Counts   []finding.TagCount
	// Candidates counts scored candidates, including those dropped as duplicates.
	Candidates int
	Started    time.Time
	Elapsed    time.Duration
}

// HighValidity returns the candidate findings scoring at or above Threshold.
func (r *Result) HighValidity() []finding.Finding {
	out := make([]finding.Finding, 0)
	for _, f := range r.Findings {
		if f.Candidate != nil && f.Score >= r.Threshold {
			out = append(out, f)
		}
	}

	return out
}

// ByTag returns the findings carrying tag, in insertion order.
func (r *Result) ByTag(tag finding.Tag) []finding.Finding {
	out := make([]finding.Finding, 0)
	for _, f := range r.Findings {
		if f.Tag == tag {
			out = append(out, f)
		}
	}

	return out
}
