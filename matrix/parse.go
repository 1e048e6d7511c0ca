// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a textual grid: one row per line, values separated by
// whitespace and/or commas. Blank lines and lines starting with '#' are
// skipped. The parsed rows are validated exactly as New does.
//
// Errors:
//   - ErrParse (wrapped with line number) for a non-integer token.
//   - ErrInvalidShape for empty input or a non-square grid.
//   - any error returned by r.
func Parse(r io.Reader) (*Matrix, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == ';'
		})
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, matrixErrorf(fmt.Sprintf("%s: line %d: %q", ctxParse, line, f), ErrParse)
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxParse, err)
	}

	return New(grid)
}

// ParseString is a convenience wrapper over Parse for in-memory text.
func ParseString(s string) (*Matrix, error) {
	return Parse(strings.NewReader(s))
}
