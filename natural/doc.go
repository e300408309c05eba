// SPDX-License-Identifier: MIT

// Package natural orders strings the way a human reads them.
//
// A string is split into chunks, alternately text and numbers. Chunks are
// compared pairwise:
//
//   - text vs text:     case-insensitive, using Unicode case folding;
//     surrounding whitespace is ignored.
//   - number vs number: by numeric value, in arbitrary precision. A number is
//     a digit run with an optional fraction ("2.5" or "2,5") and an optional
//     exponent ("1E4", "2.4E-5").
//   - text vs number:   by their text, so digits sort before letters.
//
// Hence "file2" < "file10", "File" == "file" and "abc 123 def" == "abc123def".
//
// Comparator adapts the ordering to any type through a translation function.
package natural
