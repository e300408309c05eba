// SPDX-License-Identifier: MIT

package stream

import "iter"

// RecursiveFlatMap returns a sequence yielding the elements of seq, where
// every element matching shouldFlatten is replaced by the elements of
// flatten(element), themselves flattened the same way, depth first.
//
// The result is lazy: flatten is called only when the walk reaches the
// element, and nothing more is pulled once the consumer stops.
func RecursiveFlatMap[T any](seq iter.Seq[T], shouldFlatten func(T) bool, flatten func(T) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(seq, shouldFlatten, flatten, yield)
	}
}

// RecursiveFlatMapFromRoot flattens the tree below root. Root itself is
// yielded only if it does not match shouldFlatten.
func RecursiveFlatMapFromRoot[T any](root T, shouldFlatten func(T) bool, flatten func(T) iter.Seq[T]) iter.Seq[T] {
	return RecursiveFlatMap(func(yield func(T) bool) { yield(root) }, shouldFlatten, flatten)
}

// walk reports false once yield has asked to stop.
func walk[T any](seq iter.Seq[T], shouldFlatten func(T) bool, flatten func(T) iter.Seq[T], yield func(T) bool) bool {
	for x := range seq {
		if shouldFlatten(x) {
			if !walk(flatten(x), shouldFlatten, flatten, yield) {
				return false
			}
			continue
		}
		if !yield(x) {
			return false
		}
	}
	return true
}
