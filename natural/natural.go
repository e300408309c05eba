// SPDX-License-Identifier: MIT

package natural

import (
	"fmt"
	"slices"
	"strings"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, with, or
// after b in natural order.
func Compare(a, b string) int {
	ca, cb := split(a), split(b)
	n := min(len(ca), len(cb))
	for i := 0; i < n; i++ {
		if c := compareChunks(ca[i], cb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ca) > n:
		return strings.Compare(ca[n].text(), "")
	case len(cb) > n:
		return strings.Compare("", cb[n].text())
	default:
		return 0
	}
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Strings sorts s in place in natural order. Equal strings keep their
// relative order.
func Strings(s []string) { slices.SortStableFunc(s, Compare) }

// Comparator orders values of type T by the natural order of a string
// rendering.
type Comparator[T any] struct {
	translate func(T) string
}

// New returns a Comparator rendering values with translate.
func New[T any](translate func(T) string) Comparator[T] {
	return Comparator[T]{translate: translate}
}

// Default returns a Comparator rendering values with their String method.
func Default[T fmt.Stringer]() Comparator[T] {
	return New(func(v T) string { return v.String() })
}

// Sprint returns a Comparator rendering values with fmt.Sprint.
func Sprint[T any]() Comparator[T] {
	return New(func(v T) string { return fmt.Sprint(v) })
}

// Compare compares the renderings of a and b.
func (c Comparator[T]) Compare(a, b T) int {
	return Compare(c.translate(a), c.translate(b))
}

// Less reports whether a sorts strictly before b.
func (c Comparator[T]) Less(a, b T) bool { return c.Compare(a, b) < 0 }

// Sort sorts s in place, stable. Each value is rendered once.
func (c Comparator[T]) Sort(s []T) {
	type keyed struct {
		v   T
		key string
	}
	ks := make([]keyed, len(s))
	for i, v := range s {
		ks[i] = keyed{v: v, key: c.translate(v)}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return Compare(a.key, b.key) })
	for i := range ks {
		s[i] = ks[i].v
	}
}
