// SPDX-License-Identifier: MIT

package enumerate

import "errors"

// Sentinel errors for enumeration. Context (slot position, rank) is attached
// with %w wrapping; match with errors.Is.
var (
	// ErrEmptyDomain is returned when a slot ends up with no admissible value
	// and empty domains were not allowed.
	ErrEmptyDomain = errors.New("enumerate: empty domain")

	// ErrExhausted is returned by Next once every element has been produced.
	ErrExhausted = errors.New("enumerate: no more elements")

	// ErrOutOfRange is returned when a rank lies outside [0, Total).
	ErrOutOfRange = errors.New("enumerate: rank out of range")
)
