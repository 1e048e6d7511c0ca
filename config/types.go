// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/magicsq/logging"
)

// Config is the complete magicsq configuration.
type Config struct {
	// Grid is an inline N×N grid. Mutually exclusive with GridFile.
	Grid [][]int `koanf:"grid"`
	// GridFile names a text grid file (see matrix.Parse).
	GridFile string         `koanf:"grid_file"`
	Output   OutputConfig   `koanf:"output"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Logging  logging.Config `koanf:"logging"`
}

// OutputConfig controls the report and its side exports.
type OutputConfig struct {
	Path         string `koanf:"path"`
	Timestamp    bool   `koanf:"timestamp"`
	FindingsPath string `koanf:"findings_path"`
	MetricsPath  string `koanf:"metrics_path"`
}

// AnalysisConfig parameterizes the engine.
type AnalysisConfig struct {
	Threshold         float64  `koanf:"threshold"`
	StrideMin         int      `koanf:"stride_min"`
	StrideMax         int      `koanf:"stride_max"`
	StartBound        string   `koanf:"start_bound"`
	TransposedStrides []int    `koanf:"transposed_strides"`
	PalindromeMin     int      `koanf:"palindrome_min"`
	PalindromeMax     int      `koanf:"palindrome_max"`
	Moduli            []int    `koanf:"moduli"`
	XORKey            int      `koanf:"xor_key"`
	SubtractKey       int      `koanf:"subtract_key"`
	Key               string   `koanf:"key"`
	KeyWords          []string `koanf:"key_words"`
	Chains            []string `koanf:"chains"`
	CoordinateLimit   int      `koanf:"coordinate_limit"`
	GoldenTolerance   float64  `koanf:"golden_tolerance"`
	Workers           int      `koanf:"workers"`
}

// Start bound names accepted by AnalysisConfig.StartBound.
const (
	StartBoundView = "view"
	StartBoundSide = "side"
)

// DefaultOutputPath is the report written when no path is configured.
const DefaultOutputPath = "magic_square_analysis.md"

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:      DefaultOutputPath,
			Timestamp: true,
		},
		Analysis: AnalysisConfig{
			Threshold:       0.8,
			StrideMin:       2,
			StrideMax:       12,
			StartBound:      StartBoundView,
			PalindromeMin:   3,
			PalindromeMax:   7,
			Moduli:          []int{3301, 509, 503, 311, 113},
			XORKey:          3301,
			SubtractKey:     3301,
			Key:             "rl)lr",
			KeyWords:        []string{"INSTRUCTION", "QUESTION", "DISCOVER", "TRUTH", "INSIDE", "YOURSELF", "FOLLOW", "KNOW"},
			CoordinateLimit: 180,
			GoldenTolerance: 0.1,
			Workers:         1,
		},
		Logging: *logging.NewDefaultConfig(),
	}
}
