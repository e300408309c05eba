// SPDX-License-Identifier: MIT

package enumerate

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
)

var bigOne = big.NewInt(1)

// Combinations enumerates the Cartesian product of a fixed list of domains,
// one value per slot, like an odometer whose rightmost wheel turns fastest.
//
// HasNext compares the produced count with Total. With no slot at all the
// product is 1, so a single empty combination is produced; a check based on
// the slot cursors alone would produce nothing.
//
// With T = any, slots may hold heterogeneous values; every value must then be
// of a comparable dynamic type.
type Combinations[T comparable] struct {
	domains []*Domain[T]
	opts    Options

	cursor  []int // index into domains[i] of buf[i]
	buf     []T   // last produced combination
	started bool

	generated *big.Int
	total     *big.Int // lazily computed, domains are immutable
}

// NewCombinations builds an odometer over flat candidate lists, one list per
// slot. Each list is de-duplicated into a Domain.
// Returns ErrEmptyDomain for an empty list unless WithAllowEmpty is given.
func NewCombinations[T comparable](candidates [][]T, opts ...Option) (*Combinations[T], error) {
	domains := make([]*Domain[T], len(candidates))
	for i, values := range candidates {
		domains[i] = NewDomain(values...)
	}
	return NewCombinationsOf(domains, opts...)
}

// NewCombinationsOf builds an odometer over already built domains.
// A nil domain is treated as empty.
func NewCombinationsOf[T comparable](domains []*Domain[T], opts ...Option) (*Combinations[T], error) {
	o := gatherOptions(opts)
	ds := make([]*Domain[T], len(domains))
	for i, d := range domains {
		if d == nil {
			d = NewDomain[T]()
		}
		if d.Len() == 0 && !o.AllowEmpty {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyDomain, i)
		}
		ds[i] = d
	}
	return &Combinations[T]{
		domains:   ds,
		opts:      o,
		cursor:    make([]int, len(ds)),
		buf:       make([]T, len(ds)),
		generated: new(big.Int),
	}, nil
}

// Domains returns the slot domains in slot order.
func (c *Combinations[T]) Domains() []*Domain[T] {
	return slices.Clone(c.domains)
}

// Total returns the number of combinations: the product of the domain sizes.
// With no slot at all the product is 1 (a single empty combination).
// The value is computed once; the returned integer is a copy.
func (c *Combinations[T]) Total() *big.Int {
	return new(big.Int).Set(c.totalRef())
}

func (c *Combinations[T]) totalRef() *big.Int {
	if c.total == nil {
		total := big.NewInt(1)
		radix := new(big.Int)
		for _, d := range c.domains {
			total.Mul(total, radix.SetInt64(int64(d.Len())))
		}
		c.total = total
	}
	return c.total
}

// Generated returns how many combinations Next has produced so far.
func (c *Combinations[T]) Generated() *big.Int {
	return new(big.Int).Set(c.generated)
}

// HasNext reports whether another combination remains.
func (c *Combinations[T]) HasNext() bool {
	return c.generated.Cmp(c.totalRef()) < 0
}

// Next returns the next combination, or ErrExhausted once all of them were
// produced. The first call returns the first value of every domain; each
// later call is an odometer increment.
//
// The returned slice is owned by the caller, unless WithReuseBuffer was given:
// the slice is then overwritten by the following call.
func (c *Combinations[T]) Next() ([]T, error) {
	if !c.HasNext() {
		return nil, ErrExhausted
	}
	if !c.started {
		c.started = true
		for i, d := range c.domains {
			c.cursor[i] = 0
			c.buf[i] = d.At(0)
		}
	} else {
		c.increment()
	}
	c.generated.Add(c.generated, bigOne)

	if c.opts.ReuseBuffer {
		return c.buf, nil
	}
	return slices.Clone(c.buf), nil
}

// increment advances the rightmost slot and carries to the left: a slot that
// overflows wraps to its first value and the slot on its left advances.
// HasNext guarantees the leftmost slot never overflows.
func (c *Combinations[T]) increment() {
	for i := len(c.domains) - 1; i >= 0; i-- {
		d := c.domains[i]
		c.cursor[i]++
		if c.cursor[i] < d.Len() {
			c.buf[i] = d.At(c.cursor[i])
			return
		}
		c.cursor[i] = 0
		c.buf[i] = d.At(0)
	}
}

// All returns an iterator over the remaining combinations. Breaking out of the
// loop leaves the odometer where it stopped.
func (c *Combinations[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for c.HasNext() {
			combo, err := c.Next()
			if err != nil || !yield(combo) {
				return
			}
		}
	}
}

// IsPossible reports whether candidate has one value per slot and each value
// belongs to the domain of its slot. It does not depend on enumeration progress.
func (c *Combinations[T]) IsPossible(candidate []T) bool {
	if len(candidate) != len(c.domains) {
		return false
	}
	for i, d := range c.domains {
		if !d.Contains(candidate[i]) {
			return false
		}
	}
	return true
}

// At returns the combination of the given rank, i.e. the one the rank-th call
// to Next (counting from 0) of a fresh odometer would produce.
// Returns ErrOutOfRange when rank is not in [0, Total).
func (c *Combinations[T]) At(rank *big.Int) ([]T, error) {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(c.totalRef()) >= 0 {
		return nil, fmt.Errorf("%w: %v not in [0, %v)", ErrOutOfRange, rank, c.totalRef())
	}
	out := make([]T, len(c.domains))
	q := new(big.Int).Set(rank)
	next, r, radix := new(big.Int), new(big.Int), new(big.Int)
	for i := len(c.domains) - 1; i >= 0; i-- {
		d := c.domains[i]
		next.QuoRem(q, radix.SetInt64(int64(d.Len())), r)
		out[i] = d.At(int(r.Int64()))
		q, next = next, q
	}
	return out, nil
}

// Rank returns the position of candidate in the enumeration order, or false
// if candidate is not a possible combination. It is the inverse of At.
func (c *Combinations[T]) Rank(candidate []T) (*big.Int, bool) {
	if !c.IsPossible(candidate) || c.totalRef().Sign() == 0 {
		return nil, false
	}
	rank := new(big.Int)
	radix := new(big.Int)
	digit := new(big.Int)
	for i, d := range c.domains {
		idx, _ := d.IndexOf(candidate[i])
		rank.Mul(rank, radix.SetInt64(int64(d.Len())))
		rank.Add(rank, digit.SetInt64(int64(idx)))
	}
	return rank, true
}
