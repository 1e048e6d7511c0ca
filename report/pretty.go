// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the terminal width used by Pretty when width ≤ 0.
const DefaultWrap = 100

// Pretty renders Markdown for a terminal.
func Pretty(markdown []byte, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("report: terminal renderer: %w", err)
	}
	out, err := r.RenderBytes(markdown)
	if err != nil {
		return "", fmt.Errorf("report: render: %w", err)
	}

	return string(out), nil
}
