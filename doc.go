// SPDX-License-Identifier: MIT

// Package magicsq is a pattern-analysis engine for magic squares: it pulls
// number sequences out of an N×N grid in many different ways, pushes them
// through numeric transforms, decodes them as ASCII text and records every
// finding together with a printable-character validity score.
//
// 🚀 What does magicsq find?
//
//	Starting from the 5×5 reference square (magic constant 3301) or any
//	grid you supply, one run produces:
//		• Stride samples of the flat and transposed sequences (n = 2..12)
//		• Rows, columns, diagonals, spiral order and 90°/180° rotations
//		• Transform chains: mod k, xor k, |v − k| mod 256, rotate, reverse
//		• Key-derived positions and keyword-length strides
//		• Palindromes, primes, factorizations, digit-root and modulo histograms
//		• Coordinate pairs and golden-ratio neighbours
//
// Under the hood the work is split into small, single-purpose packages:
//
//	matrix/    — immutable N×N grid, views, validators, text parser
//	extract/   — extraction strategies and the stride sweep
//	transform/ — composable transform steps and chains
//	codec/     — value → ASCII encodings and validity scoring
//	analyze/   — number-theoretic and structural property analyzers
//	finding/   — candidates, findings and the de-duplicating aggregator
//	engine/    — staged orchestration, metrics and the run Result
//	report/    — Markdown and YAML artifacts, terminal rendering
//	config/    — YAML/TOML files plus MAGICSQ_* environment overrides
//	logging/   — zap-backed structured logging
//	provision/ — manifest-driven install of the external tool chain
//
// Quick example:
//
//	434  1311 312  278  966
//	204  812  934  280  1071
//	626  620  809  620  626     transposed stride 5, start 2
//	1071 280  934  812  204     → 626 620 809 620 626
//	966  278  312  1311 434     → mod 256 → "rl)lr" (100% printable)
//
// The magicsq command (cmd/magicsq) wires everything together:
//
//	go install github.com/katalvlaran/magicsq/cmd/magicsq@latest
//	magicsq --grid-file square.txt --pretty
package magicsq
