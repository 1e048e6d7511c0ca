// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"slices"
)

// Op tags the variant held by a Step.
type Op int

const (
	OpModulo Op = iota
	OpXOR
	OpSubtract
	OpRotate
	OpReverse
)

// Direction selects the rotation direction of an OpRotate step.
type Direction int

const (
	Left Direction = iota
	Right
)

// SubtractModulus is the fixed modulus applied after |v − k|.
const SubtractModulus = 256

// Step is one transform. K is the operand of mod/xor/sub; Dir and Amount
// parameterize rotation; OpReverse uses neither.
type Step struct {
	Op     Op
	K      int
	Dir    Direction
	Amount int
}

// Mod returns the step v → v mod k (k > 0).
func Mod(k int) Step { return Step{Op: OpModulo, K: k} }

// XOR returns the step v → v ⊕ k.
func XOR(k int) Step { return Step{Op: OpXOR, K: k} }

// Sub returns the step v → |v − k| mod 256.
func Sub(k int) Step { return Step{Op: OpSubtract, K: k} }

// RotateLeft returns the step moving the first element to the end, n times.
func RotateLeft(n int) Step { return Step{Op: OpRotate, Dir: Left, Amount: n} }

// RotateRight returns the step moving the last element to the front, n times.
func RotateRight(n int) Step { return Step{Op: OpRotate, Dir: Right, Amount: n} }

// Reverse returns the step reversing the sequence end to end.
func Reverse() Step { return Step{Op: OpReverse} }

// Validate reports ErrInvalidStep for a non-positive modulus, a negative
// rotation amount or an unknown Op.
func (s Step) Validate() error {
	switch s.Op {
	case OpModulo:
		if s.K <= 0 {
			return fmt.Errorf("%s: modulus must be > 0: %w", s, ErrInvalidStep)
		}
	case OpRotate:
		if s.Amount < 0 {
			return fmt.Errorf("%s: amount must be >= 0: %w", s, ErrInvalidStep)
		}
	case OpXOR, OpSubtract, OpReverse:
	default:
		return fmt.Errorf("op(%d): %w", int(s.Op), ErrInvalidStep)
	}

	return nil
}

// Apply returns a new sequence with s applied. It is total: an invalid
// step (see Validate) leaves the values unchanged rather than failing.
func (s Step) Apply(seq []int) []int {
	out := slices.Clone(seq)
	if out == nil {
		out = []int{}
	}
	switch s.Op {
	case OpModulo:
		if s.K > 0 {
			for i, v := range out {
				out[i] = ModValue(v, s.K)
			}
		}
	case OpXOR:
		for i, v := range out {
			out[i] = XORValue(v, s.K)
		}
	case OpSubtract:
		for i, v := range out {
			out[i] = SubValue(v, s.K)
		}
	case OpRotate:
		rotate(out, s.Dir, s.Amount)
	case OpReverse:
		slices.Reverse(out)
	}

	return out
}

// String renders the step in the Parse syntax.
func (s Step) String() string {
	switch s.Op {
	case OpModulo:
		return fmt.Sprintf("mod:%d", s.K)
	case OpXOR:
		return fmt.Sprintf("xor:%d", s.K)
	case OpSubtract:
		return fmt.Sprintf("sub:%d", s.K)
	case OpRotate:
		if s.Dir == Right {
			return fmt.Sprintf("rotr:%d", s.Amount)
		}
		return fmt.Sprintf("rotl:%d", s.Amount)
	case OpReverse:
		return "rev"
	default:
		return fmt.Sprintf("op(%d)", int(s.Op))
	}
}

// ModValue returns v mod k in [0,k) for k > 0 (Euclidean remainder).
func ModValue(v, k int) int {
	r := v % k
	if r < 0 {
		r += k
	}

	return r
}

// XORValue returns v ⊕ k computed on the uint32 representation of both operands.
func XORValue(v, k int) int {
	return int(uint32(v) ^ uint32(k))
}

// SubValue returns |v − k| mod 256.
func SubValue(v, k int) int {
	d := v - k
	if d < 0 {
		d = -d
	}

	return d % SubtractModulus
}

// rotate rotates seq in place by amount positions; amount is reduced mod len.
func rotate(seq []int, dir Direction, amount int) {
	n := len(seq)
	if n == 0 || amount <= 0 {
		return
	}
	k := amount % n
	if k == 0 {
		return
	}
	if dir == Right {
		k = n - k
	}
	// Left rotation by k: three reversals.
	slices.Reverse(seq[:k])
	slices.Reverse(seq[k:])
	slices.Reverse(seq)
}
