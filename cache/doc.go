// SPDX-License-Identifier: MIT

// Package cache stores values of different types in a single map, keyed by
// typed keys.
//
// A Key[T] fixes the type of the value stored under it, so Put and Get are
// checked at compile time:
//
//	hits := cache.NewKey[int]("hits")
//	c := cache.New()
//	cache.Put(c, hits, 3)
//	n, _ := cache.Get(c, hits) // n is an int
//
// Keys are compared by identity: two keys created with the same name are
// distinct. The name only shows in String and Snapshot.
//
// A Cache can save its content as a default (SetAsDefault) and later return
// to it (ResetToDefault). Without a saved default, ResetToDefault clears.
//
// All methods are safe for concurrent use.
package cache
