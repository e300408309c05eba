// SPDX-License-Identifier: MIT

// Package reflexive provides a bidirectional map: a one-to-one relation that
// can be queried from the key side or from the value side.
//
// Map keeps the relation a bijection. Putting a value under a new key moves
// it there, and the former key disappears:
//
//	m := reflexive.New[string, int]()
//	m.Put("a", 1)
//	m.Put("b", 1) // "a" is gone
//
// Reverse returns a view with keys and values swapped. Both views share
// their storage, so a change through one is seen by the other. Iteration
// follows the order in which the couples were first inserted.
//
// A Map is not safe for concurrent use.
package reflexive
