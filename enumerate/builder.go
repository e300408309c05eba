// SPDX-License-Identifier: MIT

package enumerate

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// DomainSpec describes the slots of a Cartesian product in terms of external
// objects.
//
//   - Candidates maps an object to its candidate values.
//   - Observed maps an object to a value observed for it; it collapses that
//     object's slot to a singleton and takes precedence over Candidates.
//   - Considered lists the objects that get a slot, in slot order. Entries of
//     Candidates or Observed for objects outside this list are ignored.
type DomainSpec[K comparable, T comparable] struct {
	Candidates map[K][]T
	Observed   map[K]T
	Considered []K
}

// BuildDomains returns one Domain per entry of spec.Considered, in the same
// order. An object listed several times gets the same domain at each of its
// positions.
//
// A slot left without value fails with ErrEmptyDomain naming its position,
// unless WithAllowEmpty is given, in which case it gets the empty domain.
//
// Complexity: O(|Considered| + |Observed| + total candidate count).
func BuildDomains[K comparable, T comparable](spec DomainSpec[K, T], opts ...Option) ([]*Domain[T], error) {
	o := gatherOptions(opts)

	positions := make(map[K][]int, len(spec.Considered))
	for i, obj := range spec.Considered {
		positions[obj] = append(positions[obj], i)
	}
	domains := make([]*Domain[T], len(spec.Considered))

	// Observed values first: once a slot is set it keeps its value.
	for obj, v := range spec.Observed {
		for _, i := range positions[obj] {
			if domains[i] == nil {
				domains[i] = NewDomain(v)
			}
		}
	}
	for obj, values := range spec.Candidates {
		for _, i := range positions[obj] {
			if domains[i] == nil {
				domains[i] = NewDomain(values...)
			}
		}
	}

	for i, d := range domains {
		if d != nil && d.Len() > 0 {
			continue
		}
		if !o.AllowEmpty {
			return nil, fmt.Errorf("%w: position %d (%v)", ErrEmptyDomain, i, spec.Considered[i])
		}
		if d == nil {
			domains[i] = NewDomain[T]()
		}
	}
	return domains, nil
}

// FromSpec builds the domains of spec and returns an odometer over them.
func FromSpec[K comparable, T comparable](spec DomainSpec[K, T], opts ...Option) (*Combinations[T], error) {
	domains, err := BuildDomains(spec, opts...)
	if err != nil {
		return nil, err
	}
	return NewCombinationsOf(domains, opts...)
}

// FromCandidates considers every key of candidates, in ascending key order,
// with no observed value.
func FromCandidates[K cmp.Ordered, T comparable](candidates map[K][]T, opts ...Option) (*Combinations[T], error) {
	return FromSpec(DomainSpec[K, T]{
		Candidates: candidates,
		Considered: slices.Sorted(maps.Keys(candidates)),
	}, opts...)
}
