// SPDX-License-Identifier: MIT

package analyze

import (
	"math"
	"math/big"

	"github.com/katalvlaran/magicsq/matrix"
)

// Defaults for the grid relations.
const (
	DefaultCoordinateLimit = 180
	DefaultGoldenTolerance = 0.1
)

// Phi is the golden ratio (1+√5)/2.
var Phi = (1 + math.Sqrt(5)) / 2

// Pair is two adjacent values taken at positions Index and Index+1.
type Pair struct {
	Index int
	A, B  int
}

// CoordinatePairs returns the pairs (seq[i], seq[i+1]) for even i where both
// values are below limit. A trailing unpaired element is ignored.
func CoordinatePairs(seq []int, limit int) []Pair {
	out := make([]Pair, 0)
	for i := 0; i+1 < len(seq); i += 2 {
		if seq[i] < limit && seq[i+1] < limit {
			out = append(out, Pair{Index: i, A: seq[i], B: seq[i+1]})
		}
	}

	return out
}

// Ratio is the quotient of horizontally adjacent cells [Row,Col]/[Row,Col+1].
type Ratio struct {
	Row, Col int
	Value    float64
}

// GoldenRatioNear returns every horizontally adjacent ratio within tol of Phi,
// in row-major order. Zero denominators are skipped.
func GoldenRatioNear(m *matrix.Matrix, tol float64) []Ratio {
	out := make([]Ratio, 0)
	n := m.Size()
	grid := m.Grid()
	for i := 0; i < n; i++ {
		for j := 0; j+1 < n; j++ {
			den := grid[i][j+1]
			if den == 0 {
				continue
			}
			r := float64(grid[i][j]) / float64(den)
			if math.Abs(r-Phi) < tol {
				out = append(out, Ratio{Row: i, Col: j, Value: r})
			}
		}
	}

	return out
}

// KeyCode summarizes the code points of a key string.
type KeyCode struct {
	Codes   []int
	Sum     int
	Product *big.Int
}

// KeyCodes returns the code point of every rune of key, their sum and their
// exact product. The empty key has Sum 0 and Product 1.
func KeyCodes(key string) KeyCode {
	kc := KeyCode{Codes: make([]int, 0, len(key)), Product: big.NewInt(1)}
	for _, r := range key {
		kc.Codes = append(kc.Codes, int(r))
		kc.Sum += int(r)
		kc.Product.Mul(kc.Product, big.NewInt(int64(r)))
	}

	return kc
}
