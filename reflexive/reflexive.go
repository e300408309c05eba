// SPDX-License-Identifier: MIT

package reflexive

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// entry is one side of a couple. seq is shared by both sides and orders
// iteration.
type entry[A any] struct {
	other A
	seq   uint64
}

// Map is a bijective map from K to V.
type Map[K, V comparable] struct {
	fwd   map[K]entry[V]
	bwd   map[V]entry[K]
	clock *uint64
}

// New returns an empty Map.
func New[K, V comparable]() *Map[K, V] {
	return &Map[K, V]{
		fwd:   make(map[K]entry[V]),
		bwd:   make(map[V]entry[K]),
		clock: new(uint64),
	}
}

// Reverse returns the V to K view of m. It shares m's storage.
func (m *Map[K, V]) Reverse() *Map[V, K] {
	return &Map[V, K]{fwd: m.bwd, bwd: m.fwd, clock: m.clock}
}

// Put maps k to v and returns the value k held before, if any.
// If v was held by another key, that key is removed.
func (m *Map[K, V]) Put(k K, v V) (V, bool) {
	old, had := m.fwd[k]
	seq := old.seq
	if had {
		delete(m.bwd, old.other)
	} else {
		*m.clock++
		seq = *m.clock
	}
	if prev, taken := m.bwd[v]; taken {
		delete(m.fwd, prev.other)
	}
	m.fwd[k] = entry[V]{other: v, seq: seq}
	m.bwd[v] = entry[K]{other: k, seq: seq}

	return old.other, had
}

// PutAll puts every couple of src. Couples whose values collide are applied
// in map iteration order, so only one of them survives.
func (m *Map[K, V]) PutAll(src map[K]V) {
	for k, v := range src {
		m.Put(k, v)
	}
}

// Get returns the value mapped to k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	e, ok := m.fwd[k]
	return e.other, ok
}

// KeyOf returns the key holding v.
func (m *Map[K, V]) KeyOf(v V) (K, bool) {
	e, ok := m.bwd[v]
	return e.other, ok
}

// ContainsKey reports whether k is mapped.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.fwd[k]
	return ok
}

// ContainsValue reports whether some key holds v.
func (m *Map[K, V]) ContainsValue(v V) bool {
	_, ok := m.bwd[v]
	return ok
}

// Delete removes k and returns the value it held.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	e, ok := m.fwd[k]
	if !ok {
		return e.other, false
	}
	delete(m.fwd, k)
	delete(m.bwd, e.other)

	return e.other, true
}

// Len returns the number of couples.
func (m *Map[K, V]) Len() int { return len(m.fwd) }

// Clear removes every couple, from both views.
func (m *Map[K, V]) Clear() {
	clear(m.fwd)
	clear(m.bwd)
}

type couple[K, V any] struct {
	k   K
	v   V
	seq uint64
}

func (m *Map[K, V]) ordered() []couple[K, V] {
	out := make([]couple[K, V], 0, len(m.fwd))
	for k, e := range m.fwd {
		out = append(out, couple[K, V]{k: k, v: e.other, seq: e.seq})
	}
	slices.SortFunc(out, func(a, b couple[K, V]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return out
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	cs := m.ordered()
	out := make([]K, len(cs))
	for i, c := range cs {
		out[i] = c.k
	}
	return out
}

// Values returns the values in insertion order.
func (m *Map[K, V]) Values() []V {
	cs := m.ordered()
	out := make([]V, len(cs))
	for i, c := range cs {
		out[i] = c.v
	}
	return out
}

// All iterates over the couples in insertion order. The order is fixed when
// iteration starts; m may be modified during the loop.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, c := range m.ordered() {
			if !yield(c.k, c.v) {
				return
			}
		}
	}
}

// String renders m as {k:v k:v}.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range m.ordered() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", c.k, c.v)
	}
	sb.WriteByte('}')
	return sb.String()
}
