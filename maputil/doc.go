// SPDX-License-Identifier: MIT

// Package maputil holds helpers over plain Go maps.
//
// ReduceToDirectLinks collapses chains of links (a→b→c) into direct links
// (a→c). Translate maps a slice of keys to their values.
//
// Errors:
//
//	ErrLoop       - a chain of links ends in a cycle.
//	ErrMissingKey - a key has no value and missing keys are not allowed.
package maputil
