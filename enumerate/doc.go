// SPDX-License-Identifier: MIT

// Package enumerate provides lazy, deterministic enumerators over
// combinatorial spaces: the Cartesian product of per-slot value domains and
// the power set of a fixed element list.
//
// What
//
//   - Domain: an ordered, de-duplicated set of admissible values for one slot.
//   - DomainSpec + BuildDomains: build one Domain per considered object from a
//     candidate map, optionally collapsed to a singleton by an observed value.
//   - Combinations: an odometer over the domains; the rightmost slot cycles
//     fastest and carries to the left on overflow.
//   - Subsets: every subset of an element list, decoded from a big.Int bit
//     pattern counting down from 2^N-1 to 0.
//
// Why
//
//   - Exhaustive configuration search without materializing the full space.
//   - Closed-form sizes (Total) that never enumerate, in arbitrary precision:
//     21 slots of 10 values already exceed uint64.
//
// Determinism
//
//	Combinations are produced in the order of their mixed-radix rank, from 0
//	to Total()-1, leftmost slot being the most significant digit. Subsets are
//	produced by descending bit pattern: the full set first, the empty set last.
//
// Ownership
//
//	By default Next returns a fresh slice per call. WithReuseBuffer switches
//	Combinations to a zero-copy mode where the returned slice aliases an
//	internal buffer and is only valid until the next call to Next.
//
//	Enumerators are single-owner: they are not safe for concurrent use and
//	are not restartable. Build a new one to enumerate again.
//
// Complexity (S = number of slots, N = number of elements)
//
//   - Combinations.Next: amortized O(1), worst case O(S) on a full carry.
//   - Subsets.Next:      O(N).
//   - Total:             O(S) or O(1) once, cached afterwards.
//
// Usage
//
//	c, err := enumerate.NewCombinations([][]any{{1, 2}, {"a", "b"}})
//	if err != nil {
//	    // ErrEmptyDomain
//	}
//	for combo := range c.All() {
//	    fmt.Println(combo) // [1 a] [1 b] [2 a] [2 b]
//	}
//
// Errors
//
//   - ErrEmptyDomain  a slot has no admissible value and WithAllowEmpty was not given.
//   - ErrExhausted    Next was called after the last element.
//   - ErrOutOfRange   At was called with a rank outside [0, Total).
package enumerate
