// SPDX-License-Identifier: MIT

// Package lvcollect is a set of small, generic, in-memory collection tools
// centred on exhaustive enumeration.
//
// The heart of the module is enumerate: build one value domain per object,
// then walk every combination of those domains like an odometer, or walk
// every subset of a set. Counts are exact (math/big), so a product of a
// hundred domains can still be sized, ranked and addressed by position.
//
// Packages:
//
//	enumerate/  domains, cartesian odometer, power-set walker, size oracle
//	filter/     tri-state filters (support, reject, undecided) + strategies
//	multimap/   key to many values, set or list semantics
//	reflexive/  bijective map with a shared-storage reverse view
//	maputil/    chain reduction of links, key translation
//	natural/    human ("natural") string ordering
//	cache/      typed heterogeneous store with a resettable default
//	stream/     recursive flattening of iter.Seq
//
//	cmd/lvenum  command line front end for enumerate
//
// Quick example:
//
//	c, _ := enumerate.NewCombinations([][]string{{"a", "b"}, {"x", "y"}})
//	for combo := range c.All() {
//		fmt.Println(combo) // [a x] [a y] [b x] [b y]
//	}
//
//	go get github.com/katalvlaran/lvcollect
package lvcollect
