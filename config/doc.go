// SPDX-License-Identifier: MIT

// Package config loads magicsq configuration.
//
// Precedence (highest to lowest):
//  1. Environment variables with the MAGICSQ_ prefix.
//  2. The configuration file (YAML, or TOML when the name ends in .toml).
//  3. Defaults from Default.
//
// Environment variables map to keys by stripping the prefix, lowercasing and
// splitting on the first underscore:
//
//	MAGICSQ_ANALYSIS_THRESHOLD -> analysis.threshold
//	MAGICSQ_OUTPUT_PATH        -> output.path
//	MAGICSQ_GRID_FILE          -> grid_file
//
// List values may be given as comma-separated strings:
//
//	MAGICSQ_ANALYSIS_MODULI=3301,509
package config
