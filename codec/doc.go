// SPDX-License-Identifier: MIT

// Package codec turns integer sequences into printable text and scores how
// much of the sequence lands in the printable ASCII range.
//
// Encodings:
//   - Direct: the value itself is the character code.
//   - Mod256: v mod 256.
//   - Mod128: v mod 128.
//
// A code in [32,126] is printable and rendered as its character; anything
// else renders as '.'. The validity score is printable / len, and 0 for an
// empty sequence. Encoding is total: every int maps to exactly one output
// character, so no function in this package returns an error for values.
package codec
