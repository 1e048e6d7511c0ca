// SPDX-License-Identifier: MIT

package analyze

import "slices"

// MinPalindrome is the shortest sequence considered a palindrome.
const MinPalindrome = 3

// Palindrome is one palindromic contiguous sub-sequence.
type Palindrome struct {
	Start  int
	Length int
	Values []int
}

// IsPalindrome reports whether seq has length ≥ MinPalindrome and equals its reversal.
func IsPalindrome(seq []int) bool {
	if len(seq) < MinPalindrome {
		return false
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		if seq[i] != seq[j] {
			return false
		}
	}

	return true
}

// Palindromes scans every contiguous window of length minLen..maxLen and
// returns the palindromic ones ordered by start, then length.
// minLen is raised to MinPalindrome; maxLen is capped at len(seq).
// An empty range yields an empty, non-nil slice.
func Palindromes(seq []int, minLen, maxLen int) []Palindrome {
	minLen = max(minLen, MinPalindrome)
	maxLen = min(maxLen, len(seq))
	out := make([]Palindrome, 0)
	for start := range seq {
		for length := minLen; length <= maxLen && start+length <= len(seq); length++ {
			window := seq[start : start+length]
			if IsPalindrome(window) {
				out = append(out, Palindrome{Start: start, Length: length, Values: slices.Clone(window)})
			}
		}
	}

	return out
}
