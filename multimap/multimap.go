// SPDX-License-Identifier: MIT

package multimap

import (
	"iter"
	"slices"
)

// Map associates each key with an ordered collection of values.
type Map[K comparable, V comparable] struct {
	unique bool
	keys   []K
	values map[K][]V
}

// New returns an empty Map with set semantics.
func New[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{unique: true, values: make(map[K][]V)}
}

// NewList returns an empty Map with list semantics.
func NewList[K comparable, V comparable]() *Map[K, V] {
	return &Map[K, V]{unique: false, values: make(map[K][]V)}
}

// Unique reports whether m has set semantics.
func (m *Map[K, V]) Unique() bool { return m.unique }

// container returns the collection of k, creating it if needed.
func (m *Map[K, V]) container(k K) []V {
	vs, ok := m.values[k]
	if !ok {
		m.keys = append(m.keys, k)
		vs = []V{}
		m.values[k] = vs
	}
	return vs
}

// Add maps v to k, keeping the values already mapped.
// Returns false if the couple was already present under set semantics.
func (m *Map[K, V]) Add(k K, v V) bool {
	vs := m.container(k)
	if m.unique && slices.Contains(vs, v) {
		return false
	}
	m.values[k] = append(vs, v)
	return true
}

// AddAll maps every value of vs to k. The key is created even if vs is empty.
// Returns true if at least one couple was added.
func (m *Map[K, V]) AddAll(k K, vs ...V) bool {
	m.container(k)
	changed := false
	for _, v := range vs {
		if m.Add(k, v) {
			changed = true
		}
	}
	return changed
}

// Remove unmaps one occurrence of v from k.
// The key itself stays present, possibly with an empty collection.
func (m *Map[K, V]) Remove(k K, v V) bool {
	vs, ok := m.values[k]
	if !ok {
		return false
	}
	i := slices.Index(vs, v)
	if i < 0 {
		return false
	}
	m.values[k] = slices.Delete(vs, i, i+1)
	return true
}

// RemoveAll unmaps every occurrence of each value of vs from k.
func (m *Map[K, V]) RemoveAll(k K, vs ...V) bool {
	current, ok := m.values[k]
	if !ok {
		return false
	}
	before := len(current)
	current = slices.DeleteFunc(current, func(v V) bool { return slices.Contains(vs, v) })
	m.values[k] = current
	return len(current) != before
}

// ContainsCouple reports whether v is mapped to k.
func (m *Map[K, V]) ContainsCouple(k K, v V) bool {
	return slices.Contains(m.values[k], v)
}

// ContainsKey reports whether k is present, even with no value.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Get returns a copy of the values of k, or nil if k is absent.
func (m *Map[K, V]) Get(k K) []V {
	vs, ok := m.values[k]
	if !ok {
		return nil
	}
	return slices.Clone(vs)
}

// Replace sets the values of k to vs and returns the previous ones
// (nil if k was absent). Under set semantics vs is de-duplicated.
func (m *Map[K, V]) Replace(k K, vs ...V) []V {
	previous := m.Get(k)
	m.container(k)
	m.values[k] = []V{}
	for _, v := range vs {
		m.Add(k, v)
	}
	return previous
}

// Delete removes k and returns its values, or nil if k was absent.
func (m *Map[K, V]) Delete(k K) []V {
	vs, ok := m.values[k]
	if !ok {
		return nil
	}
	delete(m.values, k)
	m.keys = slices.DeleteFunc(m.keys, func(x K) bool { return x == k })
	return vs
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K { return slices.Clone(m.keys) }

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// Size returns the number of couples.
func (m *Map[K, V]) Size() int {
	n := 0
	for _, vs := range m.values {
		n += len(vs)
	}
	return n
}

// Clear removes every key.
func (m *Map[K, V]) Clear() {
	m.keys = nil
	m.values = make(map[K][]V)
}

// All iterates over every couple, keys in insertion order, then values in
// insertion order. The Map must not be mutated during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			for _, v := range m.values[k] {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Collections returns an independent map[K][]V snapshot.
func (m *Map[K, V]) Collections() map[K][]V {
	out := make(map[K][]V, len(m.values))
	for k, vs := range m.values {
		out[k] = slices.Clone(vs)
	}
	return out
}

// Clone returns a deep copy of m with the same semantics.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		unique: m.unique,
		keys:   slices.Clone(m.keys),
		values: m.Collections(),
	}
}
