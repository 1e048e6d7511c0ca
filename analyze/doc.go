// SPDX-License-Identifier: MIT

// Package analyze holds the pure numeric classifiers used to annotate
// sequences and scalars: primality, factorization, digital root, palindromic
// sub-sequences and keyed histograms, plus a few grid relations (coordinate
// pairs, golden-ratio neighbours, key code points).
//
// Every function is stateless and deterministic. Outputs that could depend on
// map iteration order (histograms, prime sets) are sorted ascending.
//
// Complexity:
//   - IsPrime, Factorize: O(√n).
//   - Palindromes: O(L·(max−min+1)·max).
//   - NewHistogram: O(L log K) for K distinct keys.
package analyze
