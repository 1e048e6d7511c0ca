// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/magicsq/engine"
	"github.com/katalvlaran/magicsq/finding"
	"github.com/katalvlaran/magicsq/provision"
)

// maxListed caps the high-validity texts shown in the summary.
const maxListed = 5

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46")).
		Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func printSummary(w io.Writer, res *engine.Result, path string, size int64) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Magic square analysis") + "\n")

	v := res.Validation
	magic := failStyle.Render("no")
	if v.IsMagic {
		magic = okStyle.Render(fmt.Sprintf("yes (constant %d)", v.MagicConstant))
	}
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Magic square:"), magic)
	line(&b, "Grid", fmt.Sprintf("%d×%d", v.Size, v.Size))
	line(&b, "Candidates", humanize.Comma(int64(res.Candidates)))
	line(&b, "Findings", humanize.Comma(int64(len(res.Findings))))

	high := rankByScore(res.HighValidity())
	line(&b, "High validity", fmt.Sprintf("%d at ≥ %.0f%%", len(high), res.Threshold*100))
	for i, f := range high {
		if i == maxListed {
			fmt.Fprintf(&b, "    %s\n", dimStyle.Render(fmt.Sprintf("… %d more", len(high)-maxListed)))
			break
		}
		fmt.Fprintf(&b, "    %s %s\n", okStyle.Render(fmt.Sprintf("%q", f.Candidate.Text)), dimStyle.Render(f.Candidate.Label()))
	}
	line(&b, "Elapsed", res.Elapsed.Round(time.Millisecond).String())
	line(&b, "Report", fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(size))))

	_, err := io.WriteString(w, b.String())
	return err
}

// rankByScore orders findings by descending score. Equal scores keep their
// insertion order.
func rankByScore(fs []finding.Finding) []finding.Finding {
	out := slices.Clone(fs)
	slices.SortStableFunc(out, func(a, b finding.Finding) int { return cmp.Compare(b.Score, a.Score) })

	return out
}

func printProvisionSummary(w io.Writer, s provision.Summary) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Provisioning summary") + "\n")
	line(&b, "Installed", fmt.Sprintf("%d/%d", len(s.Installed), s.Total()))
	line(&b, "Skipped", fmt.Sprint(len(s.Skipped)))
	failed := okStyle.Render("0")
	if !s.OK() {
		failed = failStyle.Render(fmt.Sprint(len(s.Failed)))
	}
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Failed:"), failed)
	for _, f := range s.Failed {
		fmt.Fprintf(&b, "    %s %s\n", failStyle.Render(f.Group+"/"+f.Package), dimStyle.Render(f.Reason))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
