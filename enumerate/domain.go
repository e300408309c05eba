// SPDX-License-Identifier: MIT

package enumerate

import (
	"fmt"
	"strings"
)

// Domain is the ordered set of admissible values of one slot.
// Insertion order is preserved and duplicates are collapsed onto their first
// occurrence. A Domain never changes once built.
type Domain[T comparable] struct {
	values []T
	index  map[T]int
}

// NewDomain builds a Domain from values.
// Complexity: O(len(values)).
func NewDomain[T comparable](values ...T) *Domain[T] {
	d := &Domain[T]{
		values: make([]T, 0, len(values)),
		index:  make(map[T]int, len(values)),
	}
	for _, v := range values {
		if _, seen := d.index[v]; seen {
			continue
		}
		d.index[v] = len(d.values)
		d.values = append(d.values, v)
	}
	return d
}

// Len returns the number of distinct values.
func (d *Domain[T]) Len() int { return len(d.values) }

// Contains reports whether v is admissible.
func (d *Domain[T]) Contains(v T) bool {
	_, ok := d.index[v]
	return ok
}

// At returns the i-th value in insertion order. It panics if i is out of range,
// like a slice index.
func (d *Domain[T]) At(i int) T { return d.values[i] }

// IndexOf returns the position of v in insertion order.
func (d *Domain[T]) IndexOf(v T) (int, bool) {
	i, ok := d.index[v]
	return i, ok
}

// Values returns a copy of the values in insertion order.
func (d *Domain[T]) Values() []T {
	out := make([]T, len(d.values))
	copy(out, d.values)
	return out
}

// String renders the domain as {v1 v2 ...}.
func (d *Domain[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range d.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
