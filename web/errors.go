// SPDX-License-Identifier: MIT
// Package web: sentinel error set.
// Every public operation validates its arguments before touching the arena,
// so any error below means the Web was left unchanged. Context is attached
// with fmt.Errorf("%w: ...") and callers match with errors.Is.

package web

import "errors"

var (
	// ErrInvalidArgument is returned for malformed configuration, e.g. a
	// non-positive capacity per level or a nil equality function.
	ErrInvalidArgument = errors.New("web: invalid argument")

	// ErrOutOfRange indicates a flat index or level number outside current bounds.
	ErrOutOfRange = errors.New("web: index out of range")

	// ErrEmpty indicates an operation that needs at least one element was
	// invoked on an empty Web.
	ErrEmpty = errors.New("web: web is empty")

	// ErrInconsistent signals broken link maintenance: a traversal reached a
	// state the invariants forbid. It is a bug in this package, never caller misuse.
	ErrInconsistent = errors.New("web: internal link inconsistency")
)
