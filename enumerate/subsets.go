// SPDX-License-Identifier: MIT

package enumerate

import (
	"iter"
	"math/big"
)

// Subsets enumerates the power set of a fixed element list, empty set
// included.
//
// Each subset is encoded as an N-bit pattern over the elements (bit i set iff
// element i is included). Patterns are produced in descending order, from
// 2^N-1 (the full set) down to 0 (the empty set). Subsets keep the insertion
// order of the elements.
type Subsets[T comparable] struct {
	elements *Domain[T]

	// countdown is the number of subsets not yet produced; the next pattern
	// is countdown-1.
	countdown *big.Int
	generated *big.Int
	total     *big.Int
}

// NewSubsets builds a power-set walker over elements. Duplicates are
// collapsed onto their first occurrence.
func NewSubsets[T comparable](elements ...T) *Subsets[T] {
	s := &Subsets[T]{
		elements:  NewDomain(elements...),
		generated: new(big.Int),
	}
	s.countdown = new(big.Int).Set(s.totalRef())
	return s
}

// Elements returns the distinct elements in insertion order.
func (s *Subsets[T]) Elements() []T { return s.elements.Values() }

// Total returns 2^N, the empty set included. The returned integer is a copy.
func (s *Subsets[T]) Total() *big.Int {
	return new(big.Int).Set(s.totalRef())
}

func (s *Subsets[T]) totalRef() *big.Int {
	if s.total == nil {
		s.total = new(big.Int).Lsh(bigOne, uint(s.elements.Len()))
	}
	return s.total
}

// Generated returns how many subsets Next has produced so far.
func (s *Subsets[T]) Generated() *big.Int {
	return new(big.Int).Set(s.generated)
}

// HasNext reports whether a subset remains, i.e. the countdown is positive.
func (s *Subsets[T]) HasNext() bool {
	return s.countdown.Sign() > 0
}

// Next returns the next subset as a fresh slice, or ErrExhausted once the
// empty set has been produced.
func (s *Subsets[T]) Next() ([]T, error) {
	if !s.HasNext() {
		return nil, ErrExhausted
	}
	s.countdown.Sub(s.countdown, bigOne)
	subset := s.decode(s.countdown)
	s.generated.Add(s.generated, bigOne)
	return subset, nil
}

func (s *Subsets[T]) decode(pattern *big.Int) []T {
	out := make([]T, 0, pattern.BitLen())
	for i := 0; i < s.elements.Len(); i++ {
		if pattern.Bit(i) == 1 {
			out = append(out, s.elements.At(i))
		}
	}
	return out
}

// All returns an iterator over the remaining subsets.
func (s *Subsets[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for s.HasNext() {
			subset, err := s.Next()
			if err != nil || !yield(subset) {
				return
			}
		}
	}
}

// IsPossible reports whether candidate is a non-empty collection of elements
// of the walked set. Repeated members are accepted. An empty candidate is
// never possible, even though Next does produce the empty set.
func (s *Subsets[T]) IsPossible(candidate []T) bool {
	if len(candidate) == 0 {
		return false
	}
	for _, v := range candidate {
		if !s.elements.Contains(v) {
			return false
		}
	}
	return true
}
