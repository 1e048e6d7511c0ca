// SPDX-License-Identifier: MIT

package analyze_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/magicsq/analyze"
	"github.com/katalvlaran/magicsq/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceFlat() []int {
	return matrix.MustNew(matrix.ReferenceGrid()).Flatten()
}

func TestIsPrime(t *testing.T) {
	t.Parallel()

	primes := []int{2, 3, 5, 113, 311, 503, 509, 809, 3301}
	composites := []int{-7, 0, 1, 4, 9, 626, 620, 434, 1311, 1071, 3303}
	for _, p := range primes {
		assert.Truef(t, analyze.IsPrime(p), "%d", p)
	}
	for _, c := range composites {
		assert.Falsef(t, analyze.IsPrime(c), "%d", c)
	}
}

func TestFactorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want []int
	}{
		{626, []int{2, 313}},
		{1311, []int{3, 19, 23}},
		{620, []int{2, 2, 5, 31}},
		{809, []int{809}},
		{1024, []int{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
		{1, nil},
		{0, nil},
		{-12, nil},
	}
	for _, tc := range tests {
		got := analyze.Factorize(tc.n)
		assert.Equalf(t, tc.want, got, "Factorize(%d)", tc.n)
		if len(got) > 0 {
			prod := 1
			for _, f := range got {
				prod *= f
				assert.True(t, analyze.IsPrime(f))
			}
			assert.Equal(t, tc.n, prod)
		}
	}
}

func TestDigitalRoot(t *testing.T) {
	t.Parallel()

	cases := map[int]int{0: 0, 7: 7, 9: 9, 10: 1, 1311: 6, 434: 2, 809: 8, 999999: 9, -1311: 6}
	for in, want := range cases {
		assert.Equalf(t, want, analyze.DigitalRoot(in), "DigitalRoot(%d)", in)
	}
}

func TestPrimesIn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{809}, analyze.PrimesIn(referenceFlat()))
	assert.Equal(t, []int{2, 3, 7}, analyze.PrimesIn([]int{7, 4, 3, 2, 7, 1}))
	assert.Empty(t, analyze.PrimesIn(nil))
}

func TestIsPalindrome(t *testing.T) {
	t.Parallel()

	assert.True(t, analyze.IsPalindrome([]int{626, 620, 809, 620, 626}))
	assert.True(t, analyze.IsPalindrome([]int{1, 2, 2, 1}))
	assert.False(t, analyze.IsPalindrome([]int{1, 1}), "too short")
	assert.False(t, analyze.IsPalindrome([]int{1, 2, 3}))
}

func TestPalindromes_Reference(t *testing.T) {
	t.Parallel()

	got := analyze.Palindromes(referenceFlat(), 3, 7)
	want := []analyze.Palindrome{
		{Start: 9, Length: 7, Values: []int{1071, 626, 620, 809, 620, 626, 1071}},
		{Start: 10, Length: 5, Values: []int{626, 620, 809, 620, 626}},
		{Start: 11, Length: 3, Values: []int{620, 809, 620}},
	}
	assert.Equal(t, want, got)
}

func TestPalindromes_Bounds(t *testing.T) {
	t.Parallel()

	seq := []int{1, 1, 1, 1}
	got := analyze.Palindromes(seq, 1, 10)
	// min clamps to 3, max caps at 4.
	require.Len(t, got, 3)
	assert.Equal(t, analyze.Palindrome{Start: 0, Length: 3, Values: []int{1, 1, 1}}, got[0])
	assert.Equal(t, 4, got[1].Length)
	assert.Equal(t, 1, got[2].Start)

	assert.Empty(t, analyze.Palindromes(seq, 5, 3))
	assert.NotNil(t, analyze.Palindromes(nil, 3, 7))
}

func TestHistogram_DigitalRoot(t *testing.T) {
	t.Parallel()

	h := analyze.NewHistogram(referenceFlat(), analyze.DigitalRootKey)
	want := []analyze.Bucket{{1, 2}, {2, 4}, {3, 2}, {5, 2}, {6, 6}, {7, 2}, {8, 5}, {9, 2}}
	assert.Equal(t, want, h.Buckets)
	assert.Equal(t, 25, h.Total())
	assert.Equal(t, 6, h.Count(6))
	assert.Equal(t, 0, h.Count(4))
	assert.Equal(t, "1:2 2:4 3:2 5:2 6:6 7:2 8:5 9:2", h.String())
}

func TestHistogram_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := []int{5, 3, 9, 3, 12, 5, 5}
	b := []int{5, 5, 12, 3, 5, 9, 3}
	for _, key := range []analyze.KeyFunc{analyze.Identity, analyze.ModKey(4), analyze.DigitalRootKey, nil} {
		assert.True(t, analyze.NewHistogram(a, key).Equal(analyze.NewHistogram(b, key)))
	}
}

func TestHistogram_ExtremeKeys(t *testing.T) {
	t.Parallel()

	h := analyze.NewHistogram([]int{math.MaxInt, 0, math.MinInt, math.MaxInt, -1}, nil)
	assert.Equal(t, []analyze.Bucket{
		{Key: math.MinInt, Count: 1},
		{Key: -1, Count: 1},
		{Key: 0, Count: 1},
		{Key: math.MaxInt, Count: 2},
	}, h.Buckets)
	assert.Equal(t, 1, h.Count(math.MinInt))
	assert.Equal(t, 2, h.Count(math.MaxInt))
	assert.Equal(t, 0, h.Count(1))
}

func TestHistogram_Modulo(t *testing.T) {
	t.Parallel()

	flat := referenceFlat()
	h := analyze.NewHistogram(flat, analyze.ModKey(3301))
	assert.Equal(t, 13, h.Len())
	assert.Equal(t, 1, h.Count(809))
	assert.Equal(t, 2, h.Count(626))

	neg := analyze.NewHistogram([]int{-1, 4}, analyze.ModKey(5))
	assert.Equal(t, []analyze.Bucket{{Key: 4, Count: 2}}, neg.Buckets)

	ident := analyze.NewHistogram([]int{7}, analyze.ModKey(0))
	assert.Equal(t, 1, ident.Count(7))
}

func TestCoordinatePairs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, analyze.CoordinatePairs(referenceFlat(), analyze.DefaultCoordinateLimit))

	got := analyze.CoordinatePairs([]int{6, 26, 200, 1, 50, 60, 7}, 180)
	assert.Equal(t, []analyze.Pair{{Index: 0, A: 6, B: 26}, {Index: 4, A: 50, B: 60}}, got)
}

func TestGoldenRatioNear(t *testing.T) {
	t.Parallel()

	assert.Empty(t, analyze.GoldenRatioNear(matrix.MustNew(matrix.ReferenceGrid()), analyze.DefaultGoldenTolerance))

	m := matrix.MustNew([][]int{{100, 62}, {5, 0}})
	got := analyze.GoldenRatioNear(m, analyze.DefaultGoldenTolerance)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Row)
	assert.Equal(t, 0, got[0].Col)
	assert.InDelta(t, 100.0/62.0, got[0].Value, 1e-12)
}

func TestKeyCodes(t *testing.T) {
	t.Parallel()

	kc := analyze.KeyCodes("rl)lr")
	assert.Equal(t, []int{114, 108, 41, 108, 114}, kc.Codes)
	assert.Equal(t, 485, kc.Sum)
	assert.Equal(t, "6214999104", kc.Product.String())

	empty := analyze.KeyCodes("")
	assert.Empty(t, empty.Codes)
	assert.Equal(t, "1", empty.Product.String())
}
