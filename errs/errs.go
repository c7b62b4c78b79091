// Package errs collects the sentinel errors of the pack codec: the ones
// Check returns for invalid input, and the one wrapped into Format's
// template panics, so callers can distinguish error classes with errors.Is
// instead of matching strings. The CheckXxx header checkers return a byte
// shortfall, not an error.
package errs

import "errors"

var (
	// ErrTruncated means the input ended before a complete value's fixed
	// header (and, for str/bin/ext, its declared payload) was available.
	ErrTruncated = errors.New("pack: truncated input")

	// ErrCorrupt means Check met a value header byte it does not
	// recognize. Input that ends early is reported as ErrTruncated.
	ErrCorrupt = errors.New("pack: corrupt or overrunning input")

	// ErrBadFormat means a format template string referenced an
	// unrecognized conversion specifier, had unbalanced or mismatched
	// brackets, or gave a map an odd number of children. Panics about the
	// argument list (a wrong argument type, too few arguments) do not wrap
	// it.
	ErrBadFormat = errors.New("pack: invalid format template")
)
