// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"fmt"
)

// Sentinel errors for filtering.
var (
	// ErrUndecided is returned by the Explicit strategy.
	ErrUndecided = errors.New("filter: undecided filtering")

	// ErrNotUndecided is returned when a strategy decider is consulted for an
	// element that already has a clear decision.
	ErrNotUndecided = errors.New("filter: case is not undecided")

	// ErrUnknownStrategy is returned for a Strategy value outside the enum.
	ErrUnknownStrategy = errors.New("filter: unknown strategy")

	// ErrUnknownDecision is returned when a Filter answers a value outside the enum.
	ErrUnknownDecision = errors.New("filter: unknown decision")
)

// Decision is the answer of a Filter for one element.
type Decision int

const (
	// Undecided means the filter does not manage this element.
	Undecided Decision = iota
	// Support means the element should be kept.
	Support
	// Reject means the element should be dropped.
	Reject
)

func (d Decision) String() string {
	switch d {
	case Undecided:
		return "undecided"
	case Support:
		return "support"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Filter tells whether an element is supported, rejected, or neither.
type Filter[E any] interface {
	Decide(element E) Decision
}

// Func adapts a plain function to a Filter.
type Func[E any] func(element E) Decision

// Decide calls f.
func (f Func[E]) Decide(element E) Decision { return f(element) }

// Accept returns a Filter that supports the elements matching pred and is
// undecided about the others.
func Accept[E any](pred func(E) bool) Filter[E] {
	return Func[E](func(e E) Decision {
		if pred(e) {
			return Support
		}
		return Undecided
	})
}

// Deny returns a Filter that rejects the elements matching pred and is
// undecided about the others.
func Deny[E any](pred func(E) bool) Filter[E] {
	return Func[E](func(e E) Decision {
		if pred(e) {
			return Reject
		}
		return Undecided
	})
}

// Decider settles the undecided cases: no supporter nor rejector, or both.
type Decider[E any] interface {
	Decide(element E, supporters, rejectors []Filter[E]) (bool, error)
}

// DeciderFunc adapts a plain function to a Decider.
type DeciderFunc[E any] func(element E, supporters, rejectors []Filter[E]) (bool, error)

// Decide calls f.
func (f DeciderFunc[E]) Decide(element E, supporters, rejectors []Filter[E]) (bool, error) {
	return f(element, supporters, rejectors)
}

// Strategy is a simple policy for undecided cases.
type Strategy int

const (
	// Conservative keeps undecided elements.
	Conservative Strategy = iota
	// Expeditive drops undecided elements.
	Expeditive
	// Explicit fails with ErrUndecided.
	Explicit
)

func (s Strategy) String() string {
	switch s {
	case Conservative:
		return "conservative"
	case Expeditive:
		return "expeditive"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range []Strategy{Conservative, Expeditive, Explicit} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
