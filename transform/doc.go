// SPDX-License-Identifier: MIT

// Package transform implements the numeric transform pipeline: total
// functions from an int sequence to an int sequence of the same length.
//
// Steps:
//   - mod:k   v → v mod k, Euclidean, result in [0,k)
//   - xor:k   v → v ⊕ k on the uint32 representation
//   - sub:k   v → |v − k| mod 256
//   - rotl:n  move the first element to the end, n times
//   - rotr:n  move the last element to the front, n times
//   - rev     reverse the sequence
//
// A Chain applies its steps strictly left to right; the empty Chain is the
// identity. Chains are associative under Then but not commutative:
// mod:256,xor:7 and xor:7,mod:256 generally differ.
//
// Apply never mutates its input.
package transform
