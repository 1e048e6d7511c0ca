// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/magicsq/analyze"
	"github.com/katalvlaran/magicsq/codec"
	"github.com/katalvlaran/magicsq/config"
	"github.com/katalvlaran/magicsq/extract"
	"github.com/katalvlaran/magicsq/transform"
)

// Config parameterizes one analysis run. It is passed by value; the engine
// keeps no process-wide state.
type Config struct {
	Threshold float64
	// Sweep drives the stride sweep. Its View is forced to the flat view.
	Sweep extract.SweepOptions
	// TransposedStrides lists the strides applied to the flat transpose.
	// Empty means {N}, the matrix side.
	TransposedStrides []int
	PalindromeMin     int
	PalindromeMax     int
	Moduli            []int
	XORKey            int
	SubtractKey       int
	Key               string
	KeyWords          []string
	// Chains are extra transform chains applied to the flat sequence.
	Chains          []transform.Chain
	CoordinateLimit int
	GoldenTolerance float64
	Workers         int
}

// DefaultConfig mirrors config.Default().Analysis.
func DefaultConfig() Config {
	cfg, err := ConfigFrom(config.Default().Analysis)
	if err != nil {
		panic(err) // defaults are static
	}

	return cfg
}

// ConfigFrom converts the file/env analysis section into an engine Config.
func ConfigFrom(a config.AnalysisConfig) (Config, error) {
	bound := extract.BoundView
	if a.StartBound == config.StartBoundSide {
		bound = extract.BoundSide
	}
	chains, err := a.ParseChains()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg := Config{
		Threshold: a.Threshold,
		Sweep: extract.SweepOptions{
			View:      extract.Flat,
			StrideMin: a.StrideMin,
			StrideMax: a.StrideMax,
			Bound:     bound,
		},
		TransposedStrides: slices.Clone(a.TransposedStrides),
		PalindromeMin:     a.PalindromeMin,
		PalindromeMax:     a.PalindromeMax,
		Moduli:            slices.Clone(a.Moduli),
		XORKey:            a.XORKey,
		SubtractKey:       a.SubtractKey,
		Key:               a.Key,
		KeyWords:          slices.Clone(a.KeyWords),
		Chains:            chains,
		CoordinateLimit:   a.CoordinateLimit,
		GoldenTolerance:   a.GoldenTolerance,
		Workers:           a.Workers,
	}

	return cfg, cfg.Validate()
}

// Validate checks the ranges the stages rely on.
func (c Config) Validate() error {
	switch {
	case c.Threshold < 0 || c.Threshold > 1:
		return fmt.Errorf("threshold %v: %w", c.Threshold, ErrInvalidConfig)
	case c.Sweep.StrideMin < 1 || c.Sweep.StrideMax < c.Sweep.StrideMin:
		return fmt.Errorf("stride range %d..%d: %w", c.Sweep.StrideMin, c.Sweep.StrideMax, ErrInvalidConfig)
	case c.PalindromeMax < c.PalindromeMin:
		return fmt.Errorf("palindrome range %d..%d: %w", c.PalindromeMin, c.PalindromeMax, ErrInvalidConfig)
	case c.Workers < 1:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	for _, k := range c.Moduli {
		if k <= 0 {
			return fmt.Errorf("modulus %d: %w", k, ErrInvalidConfig)
		}
	}
	for _, n := range c.TransposedStrides {
		if n < 1 {
			return fmt.Errorf("transposed stride %d: %w", n, ErrInvalidConfig)
		}
	}

	return nil
}

func (c Config) coordinateLimit() int {
	if c.CoordinateLimit <= 0 {
		return analyze.DefaultCoordinateLimit
	}
	return c.CoordinateLimit
}

func (c Config) goldenTolerance() float64 {
	if c.GoldenTolerance <= 0 {
		return analyze.DefaultGoldenTolerance
	}
	return c.GoldenTolerance
}

// sweepEncodings are reported for every stride sweep item.
var sweepEncodings = []codec.Encoding{codec.Direct, codec.Mod256}
