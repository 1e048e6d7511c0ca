// SPDX-License-Identifier: MIT

package analyze

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// KeyFunc maps a value to its histogram key.
type KeyFunc func(int) int

// Identity keys every value by itself.
func Identity(v int) int { return v }

// DigitalRootKey keys every value by its digital root.
func DigitalRootKey(v int) int { return DigitalRoot(v) }

// ModKey keys by the Euclidean remainder mod k. k ≤ 0 degrades to Identity.
func ModKey(k int) KeyFunc {
	if k <= 0 {
		return Identity
	}
	return func(v int) int {
		r := v % k
		if r < 0 {
			r += k
		}
		return r
	}
}

// Bucket is one histogram entry.
type Bucket struct {
	Key   int
	Count int
}

// Histogram is a key → count table with keys in ascending order, so equal
// multisets of keys always produce equal histograms.
type Histogram struct {
	Buckets []Bucket
}

// NewHistogram counts key(v) for every v in seq. A nil key means Identity.
func NewHistogram(seq []int, key KeyFunc) Histogram {
	if key == nil {
		key = Identity
	}
	counts := make(map[int]int)
	for _, v := range seq {
		counts[key(v)]++
	}
	buckets := make([]Bucket, 0, len(counts))
	for k, c := range counts {
		buckets = append(buckets, Bucket{Key: k, Count: c})
	}
	slices.SortFunc(buckets, func(a, b Bucket) int { return cmp.Compare(a.Key, b.Key) })

	return Histogram{Buckets: buckets}
}

// Len returns the number of distinct keys.
func (h Histogram) Len() int { return len(h.Buckets) }

// Total returns the sum of all counts.
func (h Histogram) Total() int {
	t := 0
	for _, b := range h.Buckets {
		t += b.Count
	}

	return t
}

// Count returns the count of key, or 0.
func (h Histogram) Count(key int) int {
	i, ok := slices.BinarySearchFunc(h.Buckets, key, func(b Bucket, k int) int { return cmp.Compare(b.Key, k) })
	if !ok {
		return 0
	}

	return h.Buckets[i].Count
}

// Equal reports bucket-wise equality.
func (h Histogram) Equal(o Histogram) bool { return slices.Equal(h.Buckets, o.Buckets) }

// String renders "k:c k:c …".
func (h Histogram) String() string {
	parts := make([]string, len(h.Buckets))
	for i, b := range h.Buckets {
		parts[i] = fmt.Sprintf("%d:%d", b.Key, b.Count)
	}

	return strings.Join(parts, " ")
}
