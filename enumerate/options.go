// SPDX-License-Identifier: MIT

package enumerate

// Option configures domain building and enumeration.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// AllowEmpty accepts slots without admissible value. The product is then
	// zero and nothing is ever produced.
	AllowEmpty bool

	// ReuseBuffer makes Combinations.Next return its internal buffer instead
	// of a copy. The slice is only valid until the next call.
	ReuseBuffer bool
}

// DefaultOptions returns the zero configuration: empty domains rejected,
// fresh slice per combination.
func DefaultOptions() Options {
	return Options{
		AllowEmpty:  false,
		ReuseBuffer: false,
	}
}

// WithAllowEmpty accepts empty domains instead of failing with ErrEmptyDomain.
func WithAllowEmpty() Option {
	return func(o *Options) { o.AllowEmpty = true }
}

// WithReuseBuffer enables the zero-copy contract of Combinations.Next.
func WithReuseBuffer() Option {
	return func(o *Options) { o.ReuseBuffer = true }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
