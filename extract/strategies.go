// SPDX-License-Identifier: MIT

package extract

import (
	"fmt"

	"github.com/katalvlaran/magicsq/matrix"
)

// The named strategies below never fail for a valid Matrix, so they return
// an Extraction directly. Extract is the general, error-returning entry point.

// FlatOf reads the whole row-major flat sequence.
func FlatOf(m *matrix.Matrix) Extraction {
	e, _ := Extract(m, Spec{Strategy: StrategyFlat, View: Flat})
	return e
}

// Diagonal reads the main diagonal.
func Diagonal(m *matrix.Matrix) Extraction {
	e, _ := Extract(m, Spec{Strategy: StrategyDiagonal})
	return e
}

// AntiDiagonal reads the anti-diagonal.
func AntiDiagonal(m *matrix.Matrix) Extraction {
	e, _ := Extract(m, Spec{Strategy: StrategyAntiDiagonal})
	return e
}

// Spiral reads the grid in clockwise spiral order.
func Spiral(m *matrix.Matrix) Extraction {
	e, _ := Extract(m, Spec{Strategy: StrategySpiral})
	return e
}

// Rows returns one Extraction per row, top to bottom.
func Rows(m *matrix.Matrix) []Extraction {
	out := make([]Extraction, m.Size())
	for i := range out {
		out[i], _ = Extract(m, Spec{Strategy: StrategyRow, View: RowView(i)})
	}

	return out
}

// Columns returns one Extraction per column, left to right.
func Columns(m *matrix.Matrix) []Extraction {
	out := make([]Extraction, m.Size())
	for j := range out {
		out[j], _ = Extract(m, Spec{Strategy: StrategyColumn, View: ColumnView(j)})
	}

	return out
}

// TransposedStride transposes m, flattens it and samples every n-th value from start.
func TransposedStride(m *matrix.Matrix, n, start int) (Extraction, error) {
	return Extract(m, Spec{Strategy: StrategyTransposedStride, View: Transposed, Stride: n, Start: start})
}

// Keyed reads flat positions (code point of each key rune) mod N².
func Keyed(m *matrix.Matrix, key string) Extraction {
	e, _ := Extract(m, Spec{Strategy: StrategyKeyed, View: Flat, Key: key})
	return e
}

// WordStrides samples the flat view with stride len(word), start 0, for each word.
// Words whose length is zero are skipped. Lengths are counted in runes.
func WordStrides(m *matrix.Matrix, words []string) []Extraction {
	out := make([]Extraction, 0, len(words))
	for _, w := range words {
		n := len([]rune(w))
		if n == 0 {
			continue
		}
		e, err := Extract(m, Spec{Strategy: StrategyStride, View: Flat, Stride: n, Start: 0})
		if err != nil {
			continue
		}
		out = append(out, e)
	}

	return out
}

// Sweep enumerates every (stride, start) pair in opts over opts.View.
//
// Order: ascending stride, then ascending start. For each stride n the start
// offsets are 0 … min(n, bound)-1, where bound is the view length (BoundView)
// or the matrix side (BoundSide).
//
// Errors:
//   - ErrInvalidRange when StrideMin < 1 or StrideMax < StrideMin.
//   - ErrInvalidView for an invalid view.
//
// Complexity: O(Σ_n min(n,bound)·L/n).
func Sweep(m *matrix.Matrix, opts SweepOptions) ([]Extraction, error) {
	if opts.StrideMin < 1 || opts.StrideMax < opts.StrideMin {
		return nil, extractErrorf(fmt.Sprintf("%s(%d..%d)", ctxSweep, opts.StrideMin, opts.StrideMax), ErrInvalidRange)
	}
	src, err := Source(m, opts.View)
	if err != nil {
		return nil, extractErrorf(ctxSweep, err)
	}
	length := len(src)
	bound := length
	if opts.Bound == BoundSide {
		bound = min(m.Size(), length)
	}

	strategy := StrategyStride
	if opts.View.Kind == ViewTransposed {
		strategy = StrategyTransposedStride
	}

	var out []Extraction
	var n, start int
	for n = opts.StrideMin; n <= opts.StrideMax; n++ {
		for start = 0; start < min(n, bound); start++ {
			positions, err := Stride(length, n, start)
			if err != nil {
				return nil, extractErrorf(ctxSweep, err)
			}
			out = append(out, Extraction{
				Spec:      Spec{Strategy: strategy, View: opts.View, Stride: n, Start: start},
				Positions: positions,
				Values:    gather(src, positions),
			})
		}
	}

	return out, nil
}
