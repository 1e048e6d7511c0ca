// SPDX-License-Identifier: MIT

package extract

import (
	"fmt"
	"strings"
)

// Strategy names how positions are chosen from a view.
type Strategy int

const (
	// StrategyStride samples every n-th element of a view starting at an offset.
	StrategyStride Strategy = iota
	// StrategyTransposedStride transposes first, then applies stride sampling to the flat transpose.
	StrategyTransposedStride
	// StrategyFlat reads the whole view in order.
	StrategyFlat
	// StrategyDiagonal reads the main diagonal.
	StrategyDiagonal
	// StrategyAntiDiagonal reads the anti-diagonal.
	StrategyAntiDiagonal
	// StrategySpiral reads the grid in clockwise spiral order.
	StrategySpiral
	// StrategyRow reads a single row.
	StrategyRow
	// StrategyColumn reads a single column.
	StrategyColumn
	// StrategyKeyed reads positions derived from a key string (code point mod L).
	StrategyKeyed
)

var strategyNames = [...]string{
	StrategyStride:           "stride",
	StrategyTransposedStride: "transposed-stride",
	StrategyFlat:             "flat",
	StrategyDiagonal:         "diagonal",
	StrategyAntiDiagonal:     "anti-diagonal",
	StrategySpiral:           "spiral",
	StrategyRow:              "row",
	StrategyColumn:           "column",
	StrategyKeyed:            "keyed",
}

// String returns the strategy's stable name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ViewKind selects the sequence a strategy reads from.
type ViewKind int

const (
	// ViewFlat is the row-major flattening.
	ViewFlat ViewKind = iota
	// ViewTransposed is the column-major flattening.
	ViewTransposed
	// ViewRow is the row at View.Index.
	ViewRow
	// ViewColumn is the column at View.Index.
	ViewColumn
	// ViewDiagonal is the main diagonal.
	ViewDiagonal
	// ViewAntiDiagonal is the anti-diagonal.
	ViewAntiDiagonal
	// ViewSpiral is the clockwise spiral from the top-left corner.
	ViewSpiral
	// ViewRotated90 is the row-major flattening of the grid rotated 90° counter-clockwise.
	ViewRotated90
	// ViewRotated180 is the row-major flattening of the grid rotated 180°.
	ViewRotated180
)

var viewNames = [...]string{
	ViewFlat:         "flat",
	ViewTransposed:   "transposed",
	ViewRow:          "row",
	ViewColumn:       "column",
	ViewDiagonal:     "diagonal",
	ViewAntiDiagonal: "anti-diagonal",
	ViewSpiral:       "spiral",
	ViewRotated90:    "rotated-90",
	ViewRotated180:   "rotated-180",
}

// String returns the view's stable name.
func (k ViewKind) String() string {
	if k < 0 || int(k) >= len(viewNames) {
		return fmt.Sprintf("view(%d)", int(k))
	}

	return viewNames[k]
}

// View is a source sequence of a Matrix. Index is used only by ViewRow and ViewColumn.
type View struct {
	Kind  ViewKind
	Index int
}

// Common views.
var (
	Flat       = View{Kind: ViewFlat}
	Transposed = View{Kind: ViewTransposed}
)

// RowView returns the view of row i.
func RowView(i int) View { return View{Kind: ViewRow, Index: i} }

// ColumnView returns the view of column j.
func ColumnView(j int) View { return View{Kind: ViewColumn, Index: j} }

func (v View) String() string {
	switch v.Kind {
	case ViewRow, ViewColumn:
		return fmt.Sprintf("%s %d", v.Kind, v.Index)
	default:
		return v.Kind.String()
	}
}

// Spec fully determines an ordered sequence of positions into a view.
// Stride and Start are meaningful for the stride strategies; Key for StrategyKeyed.
// A Spec is a value type and is never mutated after construction.
type Spec struct {
	Strategy Strategy
	View     View
	Stride   int
	Start    int
	Key      string
}

// String renders a compact, stable label such as "stride n=3 start=1 (flat)".
func (s Spec) String() string {
	var b strings.Builder
	b.WriteString(s.Strategy.String())
	switch s.Strategy {
	case StrategyStride, StrategyTransposedStride:
		fmt.Fprintf(&b, " n=%d start=%d", s.Stride, s.Start)
	case StrategyKeyed:
		fmt.Fprintf(&b, " key=%q", s.Key)
	}
	switch s.Strategy {
	case StrategyStride, StrategyFlat, StrategyKeyed:
		fmt.Fprintf(&b, " (%s)", s.View)
	case StrategyRow, StrategyColumn:
		fmt.Fprintf(&b, " %d", s.View.Index)
	}

	return b.String()
}

// Extraction is the result of applying a Spec to a Matrix.
// Positions index into the Spec's view; Values[k] is the view value at Positions[k].
type Extraction struct {
	Spec      Spec
	Positions []int
	Values    []int
}

// Len returns the number of extracted values.
func (e Extraction) Len() int { return len(e.Values) }

// StartBound selects the upper bound on start offsets during a sweep.
type StartBound int

const (
	// BoundView limits start to [0, min(n, L)) where L is the view length.
	BoundView StartBound = iota
	// BoundSide limits start to [0, min(n, N)) where N is the matrix side.
	BoundSide
)

func (b StartBound) String() string {
	if b == BoundSide {
		return "side"
	}

	return "view"
}

// SweepOptions configures Sweep.
type SweepOptions struct {
	View      View
	StrideMin int
	StrideMax int
	Bound     StartBound
}

// DefaultSweepOptions sweeps strides 2..12 over the flat view.
func DefaultSweepOptions() SweepOptions {
	return SweepOptions{
		View:      Flat,
		StrideMin: DefaultStrideMin,
		StrideMax: DefaultStrideMax,
		Bound:     BoundView,
	}
}

// Default sweep range.
const (
	DefaultStrideMin = 2
	DefaultStrideMax = 12
)
