// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/magicsq/matrix"
	"github.com/katalvlaran/magicsq/transform"
)

// ErrInvalidConfig is wrapped by every validation and load failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks ranges and cross-field constraints. It does not read GridFile.
func (c *Config) Validate() error {
	a := c.Analysis
	switch {
	case len(c.Grid) > 0 && c.GridFile != "":
		return invalidf("grid and grid_file are mutually exclusive")
	case c.Output.Path == "":
		return invalidf("output.path is required")
	case a.Threshold < 0 || a.Threshold > 1:
		return invalidf("analysis.threshold %v outside [0,1]", a.Threshold)
	case a.StrideMin < 1 || a.StrideMax < a.StrideMin:
		return invalidf("analysis stride range %d..%d", a.StrideMin, a.StrideMax)
	case a.StartBound != StartBoundView && a.StartBound != StartBoundSide:
		return invalidf("analysis.start_bound %q (want %q or %q)", a.StartBound, StartBoundView, StartBoundSide)
	case a.PalindromeMin < 1 || a.PalindromeMax < a.PalindromeMin:
		return invalidf("analysis palindrome range %d..%d", a.PalindromeMin, a.PalindromeMax)
	case a.CoordinateLimit < 1:
		return invalidf("analysis.coordinate_limit must be > 0")
	case a.GoldenTolerance <= 0:
		return invalidf("analysis.golden_tolerance must be > 0")
	case a.Workers < 1:
		return invalidf("analysis.workers must be >= 1")
	}
	for _, k := range a.Moduli {
		if k <= 0 {
			return invalidf("analysis.moduli: %d is not positive", k)
		}
	}
	for _, n := range a.TransposedStrides {
		if n < 1 {
			return invalidf("analysis.transposed_strides: %d is not positive", n)
		}
	}
	if _, err := a.ParseChains(); err != nil {
		return fmt.Errorf("analysis.chains: %w: %w", ErrInvalidConfig, err)
	}
	if len(c.Grid) > 0 {
		if _, err := matrix.New(c.Grid); err != nil {
			return fmt.Errorf("grid: %w: %w", ErrInvalidConfig, err)
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Matrix resolves the grid to analyze: GridFile, then Grid, then the reference grid.
func (c *Config) Matrix() (*matrix.Matrix, error) {
	switch {
	case c.GridFile != "":
		f, err := os.Open(c.GridFile)
		if err != nil {
			return nil, fmt.Errorf("grid_file: %w", err)
		}
		defer f.Close()
		m, err := matrix.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("grid_file %s: %w", c.GridFile, err)
		}
		return m, nil
	case len(c.Grid) > 0:
		return matrix.New(c.Grid)
	default:
		return matrix.New(matrix.ReferenceGrid())
	}
}

// ParseChains parses every configured extra chain.
func (a AnalysisConfig) ParseChains() ([]transform.Chain, error) {
	out := make([]transform.Chain, 0, len(a.Chains))
	for _, expr := range a.Chains {
		ch, err := transform.Parse(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}

	return out, nil
}
