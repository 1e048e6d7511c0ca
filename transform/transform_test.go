// SPDX-License-Identifier: MIT

package transform_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/magicsq/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Apply(t *testing.T) {
	t.Parallel()

	in := []int{626, 620, 809, -3}
	tests := []struct {
		name string
		step transform.Step
		want []int
	}{
		{"mod 256", transform.Mod(256), []int{114, 108, 41, 253}},
		{"mod 7 euclidean", transform.Mod(7), []int{3, 4, 4, 4}},
		{"xor 3301", transform.XOR(3301), []int{626 ^ 3301, 620 ^ 3301, 809 ^ 3301, int(uint32(0xFFFFFFFD) ^ 3301)}},
		{"sub 3301", transform.Sub(3301), []int{(3301 - 626) % 256, (3301 - 620) % 256, (3301 - 809) % 256, 3304 % 256}},
		{"rotl 1", transform.RotateLeft(1), []int{620, 809, -3, 626}},
		{"rotr 1", transform.RotateRight(1), []int{-3, 626, 620, 809}},
		{"rotl 5 wraps", transform.RotateLeft(5), []int{620, 809, -3, 626}},
		{"rotl 0", transform.RotateLeft(0), []int{626, 620, 809, -3}},
		{"rev", transform.Reverse(), []int{-3, 809, 620, 626}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src := append([]int(nil), in...)
			got := tc.step.Apply(src)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, in, src, "input must not be mutated")
		})
	}
}

func TestStep_InvalidIsTotal(t *testing.T) {
	t.Parallel()

	bad := transform.Mod(0)
	require.ErrorIs(t, bad.Validate(), transform.ErrInvalidStep)
	assert.Equal(t, []int{5, 6}, bad.Apply([]int{5, 6}))

	require.ErrorIs(t, transform.RotateLeft(-1).Validate(), transform.ErrInvalidStep)
	require.ErrorIs(t, transform.Step{Op: transform.Op(77)}.Validate(), transform.ErrInvalidStep)
	require.NoError(t, transform.XOR(-5).Validate())
}

func TestStep_EmptySequence(t *testing.T) {
	t.Parallel()

	for _, s := range []transform.Step{transform.Mod(3), transform.RotateRight(2), transform.Reverse()} {
		got := s.Apply(nil)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestChain_LeftToRight(t *testing.T) {
	t.Parallel()

	in := []int{300, 301}
	modThenXor := transform.MustChain(transform.Mod(256), transform.XOR(1))
	xorThenMod := transform.MustChain(transform.XOR(1), transform.Mod(256))

	assert.Equal(t, []int{45, 44}, modThenXor.Apply(in))
	assert.Equal(t, []int{45, 44}, xorThenMod.Apply(in))

	// Order matters once the xor operand spans beyond the modulus.
	a := transform.MustChain(transform.Mod(256), transform.XOR(3301)).Apply(in)
	b := transform.MustChain(transform.XOR(3301), transform.Mod(256)).Apply(in)
	assert.NotEqual(t, a, b)
}

func TestChain_IdentityAndComposition(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}
	got := transform.Identity.Apply(in)
	assert.Equal(t, in, got)
	got[0] = 9
	assert.Equal(t, 1, in[0], "identity returns a copy")

	a := transform.MustChain(transform.Reverse())
	b := transform.MustChain(transform.RotateLeft(1), transform.Mod(2))
	c := transform.MustChain(transform.XOR(4))

	// (a;b);c == a;(b;c)
	assert.Equal(t, a.Then(b).Then(c).Apply(in), a.Then(b.Then(c)).Apply(in))
	// Then composes in application order.
	assert.Equal(t, b.Apply(a.Apply(in)), a.Then(b).Apply(in))
	assert.Len(t, a, 1, "Then must not modify its receiver")
}

func TestNewChain_Invalid(t *testing.T) {
	t.Parallel()

	_, err := transform.NewChain(transform.Reverse(), transform.Mod(-2))
	require.Error(t, err)
	require.True(t, errors.Is(err, transform.ErrInvalidStep))
	assert.Panics(t, func() { transform.MustChain(transform.Mod(0)) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr    string
		want    string
		wantErr error
	}{
		{"", "identity", nil},
		{"identity", "identity", nil},
		{"xor:3301, mod:256", "xor:3301,mod:256", nil},
		{"sub:3301", "sub:3301", nil},
		{"rotl:1,rotr:2,rev", "rotl:1,rotr:2,rev", nil},
		{"REVERSE", "rev", nil},
		{"mod:0", "", transform.ErrInvalidStep},
		{"rotl:-1", "", transform.ErrInvalidStep},
		{"mod", "", transform.ErrParse},
		{"mod:x", "", transform.ErrParse},
		{"rev:1", "", transform.ErrParse},
		{"shift:3", "", transform.ErrParse},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			c, err := transform.Parse(tc.expr)
			if tc.wantErr != nil {
				require.Truef(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.String())

			again, err := transform.Parse(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, again)
		})
	}
}
