// SPDX-License-Identifier: MIT
// Package: symgraph/automorphism
//
// options.go — functional options for searches.

package automorphism

import "fmt"

// Option configures a search.
type Option func(*options)

type options struct {
	// maxNodes bounds the number of search-tree nodes; 0 means unlimited.
	maxNodes int
	err      error
}

// WithMaxNodes caps the number of refinement nodes visited by one call.
// n == 0 disables the cap; n < 0 is rejected with ErrOptionViolation.
func WithMaxNodes(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxNodes cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxNodes = n
	}
}

func resolve(opts []Option) (options, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
