// SPDX-License-Identifier: MIT

// Package finding defines the scored Candidate, the tagged Finding and the
// Aggregator that collects findings in encounter order, deduplicated by
// (Tag, Payload).
//
// Ownership:
//
//	An Aggregator owns the findings appended to it. Accessors return copies of
//	the slice header, never references to internal storage that a caller could
//	use to reorder or drop entries.
package finding
