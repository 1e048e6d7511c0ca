// SPDX-License-Identifier: MIT

// Package engine runs the full magicsq analysis over one matrix.Matrix and
// returns the deduplicated, ordered finding list.
//
// Stages run in a fixed order:
//
//	validation → number theory → stride sweep → transposed strides →
//	named views → transforms → rotations → keys → relations
//
// The stride sweep may be evaluated by a bounded errgroup (Config.Workers).
// Candidates are written into an index-addressed slice and appended to the
// aggregator in sweep order, so the finding list is identical for any worker
// count. The context is checked between stages and between sweep items.
//
// Metrics, when enabled with WithMetrics, go to a private Prometheus registry
// that can be dumped in the node-exporter textfile format.
package engine
