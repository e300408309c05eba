// SPDX-License-Identifier: MIT

package maputil

import (
	"errors"
	"fmt"
)

var (
	// ErrLoop indicates a chain of links that never reaches a final target.
	ErrLoop = errors.New("maputil: loop at the end of a chain")

	// ErrMissingKey indicates a key absent from the translation map.
	ErrMissingKey = errors.New("maputil: missing key")
)

// ReduceToDirectLinks follows every chain of links from its source, a key
// that is no link's target, to its final target, a value that is no link's
// key, and returns the source→target links.
//
// With keepIntermediaries, keys met along a chain are mapped to the chain's
// final target too. A cycle reached from a source fails with ErrLoop. A
// cycle that no source reaches is not part of any chain and is ignored.
//
// Each link is walked once; chains merging into an already resolved one
// reuse its target.
func ReduceToDirectLinks[T comparable](links map[T]T, keepIntermediaries bool) (map[T]T, error) {
	isTarget := make(map[T]bool, len(links))
	for _, v := range links {
		isTarget[v] = true
	}

	reduced := make(map[T]T)
	resolved := reduced
	if !keepIntermediaries {
		resolved = make(map[T]T)
	}
	for source, target := range links {
		if isTarget[source] {
			continue
		}
		var path []T
		onPath := make(map[T]bool)
		for {
			if final, ok := resolved[target]; ok {
				target = final
				break
			}
			next, isKey := links[target]
			if !isKey {
				break
			}
			if onPath[target] {
				return nil, fmt.Errorf("%w: %v", ErrLoop, loopFrom(path, target))
			}
			onPath[target] = true
			path = append(path, target)
			target = next
		}
		for _, hop := range path {
			resolved[hop] = target
		}
		reduced[source] = target
	}

	return reduced, nil
}

// loopFrom returns the suffix of path starting at start.
func loopFrom[T comparable](path []T, start T) []T {
	for i, hop := range path {
		if hop == start {
			return path[i:]
		}
	}
	return path
}

// Translate returns the values of keys in m, in order. A key absent from m
// yields the zero value if allowMissing is set, and ErrMissingKey otherwise.
func Translate[K comparable, V any](keys []K, m map[K]V, allowMissing bool) ([]V, error) {
	out := make([]V, len(keys))
	for i, k := range keys {
		v, ok := m[k]
		if !ok && !allowMissing {
			return nil, fmt.Errorf("%w: %v at index %d", ErrMissingKey, k, i)
		}
		out[i] = v
	}
	return out, nil
}
