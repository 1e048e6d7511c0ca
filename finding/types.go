// SPDX-License-Identifier: MIT

package finding

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/magicsq/analyze"
	"github.com/katalvlaran/magicsq/codec"
	"github.com/katalvlaran/magicsq/extract"
	"github.com/katalvlaran/magicsq/transform"
)

// Tag classifies a Finding.
type Tag string

// Tags produced by the engine.
const (
	TagStride           Tag = "stride"
	TagTransposedStride Tag = "transposed-stride"
	TagFlat             Tag = "flat"
	TagRow              Tag = "row"
	TagColumn           Tag = "column"
	TagDiagonal         Tag = "diagonal"
	TagAntiDiagonal     Tag = "anti-diagonal"
	TagSpiral           Tag = "spiral"
	TagTransform        Tag = "transform"
	TagRotation         Tag = "rotation"
	TagKeyed            Tag = "keyed"
	TagPalindrome       Tag = "palindrome"
	TagPrime            Tag = "prime"
	TagFactorization    Tag = "factorization"
	TagDigitalRoot      Tag = "digital-root-histogram"
	TagModulo           Tag = "modulo-histogram"
	TagMagicSquare      Tag = "magic-square"
	TagPointSymmetry    Tag = "point-symmetry"
	TagCoordinatePair   Tag = "coordinate-pair"
	TagGoldenRatio      Tag = "golden-ratio"
	TagKeyCode          Tag = "key-code"
)

// Candidate is one extracted, transformed and encoded sequence.
type Candidate struct {
	Spec        extract.Spec
	Chain       transform.Chain
	Encoding    codec.Encoding
	Positions   []int
	Values      []int
	Transformed []int
	Text        string
	Score       float64
}

// NewCandidate runs chain over the extraction and encodes the result.
func NewCandidate(e extract.Extraction, chain transform.Chain, enc codec.Encoding) Candidate {
	transformed := chain.Apply(e.Values)
	r := codec.Encode(transformed, enc)

	return Candidate{
		Spec:        e.Spec,
		Chain:       slices.Clone(chain),
		Encoding:    enc,
		Positions:   slices.Clone(e.Positions),
		Values:      slices.Clone(e.Values),
		Transformed: transformed,
		Text:        r.Text,
		Score:       r.Score,
	}
}

// IsHighValidity reports Score ≥ threshold.
func (c Candidate) IsHighValidity(threshold float64) bool {
	return codec.IsHighValidity(c.Score, threshold)
}

// Label renders "spec | chain | encoding" for reports.
func (c Candidate) Label() string {
	return fmt.Sprintf("%s | %s | %s", c.Spec, c.Chain, c.Encoding)
}

// Value is an annotation value: Bool, Int, Ints or Histogram.
type Value interface {
	fmt.Stringer
	isValue()
}

// Bool annotates a yes/no property such as primality.
type Bool bool

// Int annotates a scalar such as a digital root.
type Int int

// Ints annotates an ordered sequence such as a factor list.
type Ints []int

// Histogram annotates a key → count table.
type Histogram analyze.Histogram

func (Bool) isValue()      {}
func (Int) isValue()       {}
func (Ints) isValue()      {}
func (Histogram) isValue() {}

func (b Bool) String() string { return fmt.Sprintf("%t", bool(b)) }
func (i Int) String() string  { return fmt.Sprintf("%d", int(i)) }
func (s Ints) String() string { return fmt.Sprint([]int(s)) }
func (h Histogram) String() string {
	return analyze.Histogram(h).String()
}

// Annotation is a named Value attached to a Finding.
type Annotation struct {
	Name  string
	Value Value
}

// Finding is one classified observation. Payload is the human-readable
// content used for deduplication together with Tag.
type Finding struct {
	Tag         Tag
	Payload     string
	Score       float64
	Candidate   *Candidate
	Annotations []Annotation
}

// Annotate returns f with a appended. f itself is not modified.
func (f Finding) Annotate(name string, v Value) Finding {
	f.Annotations = append(slices.Clip(f.Annotations), Annotation{Name: name, Value: v})
	return f
}

// Annotation returns the value named name.
func (f Finding) Annotation(name string) (Value, bool) {
	for _, a := range f.Annotations {
		if a.Name == name {
			return a.Value, true
		}
	}

	return nil, false
}

// String renders "tag: payload (score)".
func (f Finding) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", f.Tag, f.Payload)
	if f.Candidate != nil {
		fmt.Fprintf(&b, " (%.1f%%)", f.Score*100)
	}

	return b.String()
}
