// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/magicsq/engine"
	"github.com/katalvlaran/magicsq/finding"
)

// DefaultTitle heads every report unless Options.Title is set.
const DefaultTitle = "Magic Square Pattern Analysis"

// Options controls rendering.
type Options struct {
	Title string
	// Timestamp includes the generation time, elapsed time and run ID.
	Timestamp bool
	// Now is used for the generation time; nil means time.Now.
	Now func() time.Time
}

func (o Options) title() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Render writes res as Markdown to w.
//
// Sections: grid, validation, findings (insertion order, high-validity
// marked), summary counts by tag, metrics footer.
func Render(w io.Writer, res *engine.Result, opts Options) error {
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) { fmt.Fprintf(bw, format, args...) }

	p("# %s\n\n", opts.title())
	if opts.Timestamp {
		p("**Generated:** %s\n", opts.now().UTC().Format(time.RFC3339))
		p("**Run ID:** %s\n\n", res.RunID)
	}

	p("## Grid\n\n```\n%s\n```\n\n", res.Matrix)

	v := res.Validation
	p("## Validation\n\n")
	p("- **Size:** %d×%d\n", v.Size, v.Size)
	if v.IsMagic {
		p("- **Magic square:** yes (constant %d)\n", v.MagicConstant)
	} else {
		p("- **Magic square:** no\n")
	}
	p("- **Point symmetry:** %s\n", yesNo(v.PointSymmetric))
	p("- **180° rotation equals original:** %s\n", yesNo(v.Rotate180Equal))
	p("- **Row sums:** %v\n", v.RowSums)
	p("- **Column sums:** %v\n", v.ColumnSums)
	p("- **Diagonal sums:** [%d %d]\n", v.MainDiagonalSum, v.AntiDiagonalSum)
	p("- **Total:** %d\n", v.Total)
	p("- **Range:** %d – %d\n", v.Min, v.Max)
	p("- **Unique values:** %d %v\n\n", len(v.UniqueValues), v.UniqueValues)

	high := res.HighValidity()
	p("## High-Validity Candidates\n\n")
	if len(high) == 0 {
		p("None at threshold %.2f.\n\n", res.Threshold)
	} else {
		p("| Tag | Method | Text | Score |\n|---|---|---|---|\n")
		for _, f := range high {
			p("| %s | %s | `%s` | %s |\n", f.Tag, cell(f.Candidate.Label()), code(f.Candidate.Text), percent(f.Score))
		}
		p("\n")
	}

	p("## Findings\n\n")
	p("| # | Tag | Payload | Score | Details |\n|---|---|---|---|---|\n")
	for i, f := range res.Findings {
		p("| %d | %s | %s | %s | %s |\n", i+1, f.Tag, cell(f.Payload), score(f, res.Threshold), cell(details(f)))
	}
	p("\n")

	p("## Summary\n\n| Tag | Count |\n|---|---|\n")
	for _, c := range res.Counts {
		p("| %s | %d |\n", c.Tag, c.Count)
	}
	p("\n")

	p("---\n\n## Analysis Metrics\n\n")
	p("- **Findings:** %d\n", len(res.Findings))
	p("- **High-validity candidates:** %d\n", len(high))
	p("- **Candidates evaluated:** %d\n", res.Candidates)
	p("- **Threshold:** %.2f\n", res.Threshold)
	if opts.Timestamp {
		p("- **Elapsed:** %s\n", res.Elapsed.Round(time.Microsecond))
	}

	return bw.Flush()
}

func details(f finding.Finding) string {
	parts := make([]string, 0, len(f.Annotations)+1)
	if f.Candidate != nil {
		parts = append(parts, f.Candidate.Label())
	}
	for _, a := range f.Annotations {
		parts = append(parts, a.Name+"="+a.Value.String())
	}

	return strings.Join(parts, "; ")
}

func score(f finding.Finding, threshold float64) string {
	if f.Candidate == nil {
		return "–"
	}
	s := percent(f.Score)
	if f.Score >= threshold {
		s += " ✅"
	}

	return s
}

func percent(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// cell escapes a value for a Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// code makes s safe inside a single-backtick code span in a table cell.
func code(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "`", "'"), "|", `\|`)
}
