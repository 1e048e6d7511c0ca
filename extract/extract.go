// SPDX-License-Identifier: MIT
// Package: extract
//
// Purpose:
//   - Resolve a View into a value sequence and a Spec into an Extraction.
//
// Determinism & Policy:
//   - Views are recomputed from the Matrix on every call (no caches).
//   - Positions are always ascending for stride strategies and in key order for keyed.

package extract

import (
	"fmt"

	"github.com/katalvlaran/magicsq/matrix"
)

const (
	ctxSource  = "Source"
	ctxStride  = "Stride"
	ctxExtract = "Extract"
	ctxSweep   = "Sweep"
)

// Source returns the value sequence of view v over m.
// Errors: ErrInvalidView for an unknown kind or an out-of-range row/column index.
func Source(m *matrix.Matrix, v View) ([]int, error) {
	switch v.Kind {
	case ViewFlat:
		return m.Flatten(), nil
	case ViewTransposed:
		return m.Transpose().Flatten(), nil
	case ViewRow:
		row, err := m.Row(v.Index)
		if err != nil {
			return nil, extractErrorf(fmt.Sprintf("%s(%s)", ctxSource, v), fmt.Errorf("%w: %w", ErrInvalidView, err))
		}
		return row, nil
	case ViewColumn:
		col, err := m.Column(v.Index)
		if err != nil {
			return nil, extractErrorf(fmt.Sprintf("%s(%s)", ctxSource, v), fmt.Errorf("%w: %w", ErrInvalidView, err))
		}
		return col, nil
	case ViewDiagonal:
		return m.MainDiagonal(), nil
	case ViewAntiDiagonal:
		return m.AntiDiagonal(), nil
	case ViewSpiral:
		return m.SpiralOrder(), nil
	case ViewRotated90:
		return m.RotateLeft90().Flatten(), nil
	case ViewRotated180:
		return m.Rotate180().Flatten(), nil
	default:
		return nil, extractErrorf(fmt.Sprintf("%s(%s)", ctxSource, v), ErrInvalidView)
	}
}

// Stride returns the positions start, start+n, start+2n, … below length.
//
// Contract:
//   - n ≥ 1 and start ≥ 0, else ErrInvalidStride.
//   - length == 0 yields an empty, non-nil slice (degenerate but valid).
//   - otherwise start must be < min(n, length), else ErrInvalidStride.
//
// Complexity: O(length/n).
func Stride(length, n, start int) ([]int, error) {
	if n < 1 || start < 0 {
		return nil, extractErrorf(fmt.Sprintf("%s(L=%d,n=%d,start=%d)", ctxStride, length, n, start), ErrInvalidStride)
	}
	if length <= 0 {
		return []int{}, nil
	}
	if start >= min(n, length) {
		return nil, extractErrorf(fmt.Sprintf("%s(L=%d,n=%d,start=%d)", ctxStride, length, n, start), ErrInvalidStride)
	}
	out := make([]int, 0, (length-start+n-1)/n)
	for p := start; p < length; p += n {
		out = append(out, p)
	}

	return out, nil
}

// Extract applies spec to m.
//
// Implementation:
//   - Stage 1: resolve the source view (StrategyTransposedStride forces the transposed view;
//     the named single-view strategies force their own view).
//   - Stage 2: compute positions (stride, keyed, or identity).
//   - Stage 3: gather values at those positions.
//
// Errors: ErrInvalidStride, ErrInvalidView, ErrUnknownStrategy.
func Extract(m *matrix.Matrix, spec Spec) (Extraction, error) {
	view, err := strategyView(spec)
	if err != nil {
		return Extraction{}, err
	}
	src, err := Source(m, view)
	if err != nil {
		return Extraction{}, err
	}

	var positions []int
	switch spec.Strategy {
	case StrategyStride, StrategyTransposedStride:
		positions, err = Stride(len(src), spec.Stride, spec.Start)
		if err != nil {
			return Extraction{}, extractErrorf(ctxExtract, err)
		}
	case StrategyKeyed:
		positions = keyPositions(spec.Key, len(src))
	default:
		positions = identity(len(src))
	}

	return Extraction{Spec: spec, Positions: positions, Values: gather(src, positions)}, nil
}

// strategyView pins the view for strategies that imply one.
func strategyView(spec Spec) (View, error) {
	switch spec.Strategy {
	case StrategyStride, StrategyFlat, StrategyKeyed:
		return spec.View, nil
	case StrategyTransposedStride:
		return Transposed, nil
	case StrategyDiagonal:
		return View{Kind: ViewDiagonal}, nil
	case StrategyAntiDiagonal:
		return View{Kind: ViewAntiDiagonal}, nil
	case StrategySpiral:
		return View{Kind: ViewSpiral}, nil
	case StrategyRow:
		return RowView(spec.View.Index), nil
	case StrategyColumn:
		return ColumnView(spec.View.Index), nil
	default:
		return View{}, extractErrorf(fmt.Sprintf("%s(%s)", ctxExtract, spec.Strategy), ErrUnknownStrategy)
	}
}

// keyPositions maps each rune of key to its code point mod length.
func keyPositions(key string, length int) []int {
	out := make([]int, 0, len(key))
	if length <= 0 {
		return out
	}
	for _, r := range key {
		out = append(out, int(r)%length)
	}

	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func gather(src, positions []int) []int {
	out := make([]int, len(positions))
	for k, p := range positions {
		out[k] = src[p]
	}

	return out
}
