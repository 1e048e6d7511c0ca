// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Printable range and placeholder.
const (
	PrintableMin = 32
	PrintableMax = 126
	Placeholder  = '.'
)

// DefaultThreshold is the score at or above which a result is high-validity.
const DefaultThreshold = 0.8

// ErrUnknownEncoding is returned by ParseEncoding for unrecognized names.
var ErrUnknownEncoding = errors.New("codec: unknown encoding")

// Encoding maps a value to a character code before the printable check.
type Encoding int

const (
	Direct Encoding = iota
	Mod256
	Mod128
)

var encodingNames = [...]string{
	Direct: "direct",
	Mod256: "mod256",
	Mod128: "mod128",
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("encoding(%d)", int(e))
	}

	return encodingNames[e]
}

// Encodings lists every supported encoding in declaration order.
func Encodings() []Encoding { return []Encoding{Direct, Mod256, Mod128} }

// ParseEncoding accepts "direct", "mod256"/"mod-256" and "mod128"/"mod-128".
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "":
		return Direct, nil
	case "mod256", "mod-256":
		return Mod256, nil
	case "mod128", "mod-128":
		return Mod128, nil
	}

	return Direct, fmt.Errorf("%q: %w", s, ErrUnknownEncoding)
}

// Code returns the character code of v under e. Modular encodings use the
// Euclidean remainder, so negative values land in [0, modulus).
// An unknown encoding behaves as Direct.
func (e Encoding) Code(v int) int {
	switch e {
	case Mod256:
		return euclid(v, 256)
	case Mod128:
		return euclid(v, 128)
	default:
		return v
	}
}

// IsPrintable reports whether code lies in [PrintableMin, PrintableMax].
func IsPrintable(code int) bool { return code >= PrintableMin && code <= PrintableMax }

// Result is the output of Encode. Valid[i] reports whether values[i] was
// printable; Text has exactly one byte per input value.
type Result struct {
	Encoding Encoding
	Text     string
	Valid    []bool
	Score    float64
}

// Printable returns the number of valid positions.
func (r Result) Printable() int {
	n := 0
	for _, ok := range r.Valid {
		if ok {
			n++
		}
	}

	return n
}

// Encode renders values under e.
// Complexity: O(len(values)).
func Encode(values []int, e Encoding) Result {
	var b strings.Builder
	b.Grow(len(values))
	valid := make([]bool, len(values))
	printable := 0
	for i, v := range values {
		code := e.Code(v)
		if IsPrintable(code) {
			b.WriteByte(byte(code))
			valid[i] = true
			printable++
			continue
		}
		b.WriteByte(Placeholder)
	}

	return Result{
		Encoding: e,
		Text:     b.String(),
		Valid:    valid,
		Score:    Score(printable, len(values)),
	}
}

// Score returns printable/total, or 0 when total is 0.
func Score(printable, total int) float64 {
	if total <= 0 {
		return 0
	}

	return float64(printable) / float64(total)
}

// IsHighValidity reports score ≥ threshold.
func IsHighValidity(score, threshold float64) bool { return score >= threshold }

// XORText XORs the code of every ASCII letter in text with the key's code
// points (cycled by character index) and maps the result through Mod256.
// Non-letters pass through unchanged; unprintable results become '.'.
// An empty key returns text unchanged.
func XORText(text, key string) string {
	keys := []rune(key)
	if len(keys) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range []rune(text) {
		if !isASCIILetter(r) {
			b.WriteRune(r)
			continue
		}
		code := Mod256.Code(int(r) ^ int(keys[i%len(keys)]))
		if IsPrintable(code) {
			b.WriteByte(byte(code))
		} else {
			b.WriteByte(Placeholder)
		}
	}

	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func euclid(v, k int) int {
	r := v % k
	if r < 0 {
		r += k
	}

	return r
}
