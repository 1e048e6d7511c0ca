// SPDX-License-Identifier: MIT

package analyze

import "slices"

// IsPrime reports whether n is prime by trial division up to ⌊√n⌋.
// n < 2 is never prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	// d <= n/d avoids d*d overflow near math.MaxInt.
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// Factorize returns the prime factors of n in ascending order, with
// multiplicity. Trial division starts at 2; a residue > 1 is the last factor.
// n < 2 yields nil.
func Factorize(n int) []int {
	if n < 2 {
		return nil
	}
	var out []int
	for d := 2; d <= n/d; d++ {
		for n%d == 0 {
			out = append(out, d)
			n /= d
		}
	}
	if n > 1 {
		out = append(out, n)
	}

	return out
}

// DigitalRoot repeatedly sums the decimal digits of |n| until one digit remains.
// DigitalRoot(0) == 0.
func DigitalRoot(n int) int {
	if n < 0 {
		n = -n
	}
	for n > 9 {
		s := 0
		for ; n > 0; n /= 10 {
			s += n % 10
		}
		n = s
	}

	return n
}

// PrimesIn returns the distinct prime values of seq, ascending.
func PrimesIn(seq []int) []int {
	out := make([]int, 0)
	for _, v := range seq {
		if IsPrime(v) {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}
