// SPDX-License-Identifier: MIT

package finding

import "slices"

type key struct {
	tag     Tag
	payload string
}

// TagCount is the number of findings carrying Tag.
type TagCount struct {
	Tag   Tag
	Count int
}

// Aggregator collects findings in insertion order and drops any whose
// (Tag, Payload) was already added. It is not safe for concurrent use; the
// engine appends from a single goroutine.
type Aggregator struct {
	items []Finding
	seen  map[key]struct{}
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{seen: make(map[key]struct{})}
}

// Add appends f unless an equal (Tag, Payload) is present. It reports whether f was added.
func (a *Aggregator) Add(f Finding) bool {
	k := key{tag: f.Tag, payload: f.Payload}
	if _, dup := a.seen[k]; dup {
		return false
	}
	a.seen[k] = struct{}{}
	a.items = append(a.items, f)

	return true
}

// Len returns the number of findings held.
func (a *Aggregator) Len() int { return len(a.items) }

// All returns every finding in insertion order.
func (a *Aggregator) All() []Finding { return slices.Clone(a.items) }

// AboveThreshold returns candidate-backed findings with Score ≥ t, in insertion order.
func (a *Aggregator) AboveThreshold(t float64) []Finding {
	out := make([]Finding, 0)
	for _, f := range a.items {
		if f.Candidate != nil && f.Score >= t {
			out = append(out, f)
		}
	}

	return out
}

// ByTag returns the findings carrying tag, in insertion order.
func (a *Aggregator) ByTag(tag Tag) []Finding {
	out := make([]Finding, 0)
	for _, f := range a.items {
		if f.Tag == tag {
			out = append(out, f)
		}
	}

	return out
}

// Counts returns per-tag counts ordered by first encounter of each tag.
func (a *Aggregator) Counts() []TagCount {
	idx := make(map[Tag]int)
	out := make([]TagCount, 0)
	for _, f := range a.items {
		i, ok := idx[f.Tag]
		if !ok {
			i = len(out)
			idx[f.Tag] = i
			out = append(out, TagCount{Tag: f.Tag})
		}
		out[i].Count++
	}

	return out
}
