// SPDX-License-Identifier: MIT

package filter

import "fmt"

// Apply returns the elements kept by filters, in input order. Undecided
// elements are resolved by decider; its error aborts the filtering.
//
// Complexity: O(len(elements) · len(filters)) plus the decider calls.
func Apply[E any](elements []E, decider Decider[E], filters ...Filter[E]) ([]E, error) {
	kept := make([]E, 0, len(elements))
	for _, e := range elements {
		var supporters, rejectors []Filter[E]
		for _, f := range filters {
			switch d := f.Decide(e); d {
			case Undecided:
				// uninformative
			case Support:
				supporters = append(supporters, f)
			case Reject:
				rejectors = append(rejectors, f)
			default:
				return nil, fmt.Errorf("%w: %v", ErrUnknownDecision, d)
			}
		}

		var keep bool
		switch {
		case len(supporters) > 0 && len(rejectors) == 0:
			keep = true
		case len(supporters) == 0 && len(rejectors) > 0:
			keep = false
		default:
			var err error
			if keep, err = decider.Decide(e, supporters, rejectors); err != nil {
				return nil, err
			}
		}
		if keep {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// StrategyDecider resolves the uninformative case with uninformative and the
// conflicting case with conflicting.
func StrategyDecider[E any](uninformative, conflicting Strategy) Decider[E] {
	return DeciderFunc[E](func(e E, supporters, rejectors []Filter[E]) (bool, error) {
		switch {
		case len(supporters) == 0 && len(rejectors) == 0:
			return decide(uninformative, e, supporters, rejectors)
		case len(supporters) > 0 && len(rejectors) > 0:
			return decide(conflicting, e, supporters, rejectors)
		default:
			return false, fmt.Errorf("%w: %v has %d supporters and %d rejectors",
				ErrNotUndecided, e, len(supporters), len(rejectors))
		}
	})
}

func decide[E any](s Strategy, e E, supporters, rejectors []Filter[E]) (bool, error) {
	switch s {
	case Conservative:
		return true, nil
	case Expeditive:
		return false, nil
	case Explicit:
		return false, fmt.Errorf("%w: %v (%d supporters vs %d rejectors)",
			ErrUndecided, e, len(supporters), len(rejectors))
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// WithStrategies is Apply with a StrategyDecider.
func WithStrategies[E any](elements []E, uninformative, conflicting Strategy, filters ...Filter[E]) ([]E, error) {
	return Apply(elements, StrategyDecider[E](uninformative, conflicting), filters...)
}

// Strict fails on any undecided element.
func Strict[E any](elements []E, filters ...Filter[E]) ([]E, error) {
	return WithStrategies(elements, Explicit, Explicit, filters...)
}

// Conservatively keeps every undecided element.
func Conservatively[E any](elements []E, filters ...Filter[E]) ([]E, error) {
	return WithStrategies(elements, Conservative, Conservative, filters...)
}

// Expeditively drops every undecided element.
func Expeditively[E any](elements []E, filters ...Filter[E]) ([]E, error) {
	return WithStrategies(elements, Expeditive, Expeditive, filters...)
}
