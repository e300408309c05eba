// SPDX-License-Identifier: MIT

// Package multimap maps a key to a collection of values.
//
// Unlike a map[K][]V, a Map manages the collections itself: adding to an
// unknown key creates its collection, and couples (key, value) can be added,
// removed and queried directly.
//
// Two flavors share the same API:
//
//   - New:     set semantics, a couple is stored at most once; adding it twice
//     is a no-op and removing it once is enough.
//   - NewList: list semantics, every addition is kept; a value added twice must
//     be removed twice.
//
// Keys and values are kept in insertion order, so iteration is deterministic.
// A Map is not safe for concurrent mutation.
//
// Collections returns a plain map[K][]V snapshot, which is what
// enumerate.DomainSpec expects as candidates.
package multimap
