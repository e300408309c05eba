// SPDX-License-Identifier: MIT

// Package filter keeps or drops elements according to a set of tri-state
// filters, and resolves the undecided cases with a pluggable policy.
//
// A Filter answers Support, Reject or Undecided for an element. For each
// element Apply collects the supporters and the rejectors among the filters:
//
//   - only supporters       → kept
//   - only rejectors        → dropped
//   - none, or both kinds   → undecided, the Decider gets the final word
//
// StrategyDecider builds a Decider from two Strategy values, one for the
// uninformative case (no supporter, no rejector) and one for the conflicting
// case (supporters and rejectors):
//
//   - Conservative  keeps the element
//   - Expeditive    drops the element
//   - Explicit      fails with ErrUndecided
//
// Strict, Conservatively and Expeditively apply the same strategy to both
// cases. Input order is preserved in the output.
package filter
