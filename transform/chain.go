// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// Chain is an ordered sequence of steps applied left to right.
type Chain []Step

// Identity is the empty chain.
var Identity = Chain{}

// NewChain validates every step and returns them as a Chain.
// Errors: ErrInvalidStep for the first invalid step (wrapped with its index).
func NewChain(steps ...Step) (Chain, error) {
	for i, s := range steps {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	return Chain(append([]Step(nil), steps...)), nil
}

// MustChain is like NewChain but panics on error. Use only for literals.
func MustChain(steps ...Step) Chain {
	c, err := NewChain(steps...)
	if err != nil {
		panic(err)
	}

	return c
}

// Apply runs every step in order. The input is never mutated; the empty
// chain returns a copy of seq.
func (c Chain) Apply(seq []int) []int {
	out := append([]int{}, seq...)
	for _, s := range c {
		out = s.Apply(out)
	}

	return out
}

// Then returns c followed by next. Neither operand is modified.
func (c Chain) Then(next Chain) Chain {
	out := make(Chain, 0, len(c)+len(next))
	out = append(out, c...)

	return append(out, next...)
}

// IsIdentity reports whether the chain has no steps.
func (c Chain) IsIdentity() bool { return len(c) == 0 }

// String renders the chain in the Parse syntax; the empty chain renders as "identity".
func (c Chain) String() string {
	if len(c) == 0 {
		return "identity"
	}
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}

	return strings.Join(parts, ",")
}

// Parse reads a comma-separated chain such as "xor:3301,mod:256,rotl:1,rev".
// Whitespace around tokens is ignored; "" and "identity" yield the empty chain.
//
// Errors: ErrParse for unknown ops or malformed operands, ErrInvalidStep for
// operands that parse but fail Validate.
func Parse(expr string) (Chain, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" || expr == "identity" {
		return Identity, nil
	}
	tokens := strings.Split(expr, ",")
	steps := make([]Step, 0, len(tokens))
	for _, tok := range tokens {
		s, err := parseStep(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}

	return NewChain(steps...)
}

func parseStep(tok string) (Step, error) {
	name, arg, hasArg := strings.Cut(tok, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "rev" || name == "reverse" {
		if hasArg {
			return Step{}, fmt.Errorf("%q: rev takes no operand: %w", tok, ErrParse)
		}
		return Reverse(), nil
	}
	if !hasArg {
		return Step{}, fmt.Errorf("%q: missing operand: %w", tok, ErrParse)
	}
	k, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return Step{}, fmt.Errorf("%q: %w", tok, ErrParse)
	}
	switch name {
	case "mod":
		return Mod(k), nil
	case "xor":
		return XOR(k), nil
	case "sub":
		return Sub(k), nil
	case "rotl":
		return RotateLeft(k), nil
	case "rotr":
		return RotateRight(k), nil
	default:
		return Step{}, fmt.Errorf("%q: unknown op %q: %w", tok, name, ErrParse)
	}
}
