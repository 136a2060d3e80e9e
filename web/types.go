// SPDX-License-Identifier: MIT
// Package web defines the Web container and its constructors.
//
// A Web owns every node in a single arena ([]Node[T]) addressed by NodeID.
// Links are handles, so removing a node never leaves a dangling owner:
// the node is unlinked from all peers and its slot goes to a free list.
//
// Layout for maxPerLevel = 3 and values 1..7:
//
//	level 0:  1 ─ 2 ─ 3 ┐
//	          │   │   │ │
//	level 1:  4 ─ 5 ─ 6 ┘┐
//	          │          │
//	level 2:  7 ─────────┘
//
// Horizontal links form one doubly linked sequence across levels
// (3.next == 4); vertical links join flat index i with i+maxPerLevel.

package web

import (
	"fmt"

	"go.uber.org/zap"
)

// NotFound is returned by IndexOf, LastIndexOf and IndexFunc when no element matches.
const NotFound = -1

// Web is the spider web container. The zero value is not usable; build one with New or NewFunc.
//
// Web is not safe for concurrent use; callers serialise access externally.
type Web[T any] struct {
	nodes []Node[T] // arena; NodeID k lives at nodes[k-1]
	free  []NodeID  // recycled arena slots

	head NodeID // flat index 0
	tail NodeID // flat index size-1
	size int

	maxPerLevel int
	equal       func(a, b T) bool
	logger      *zap.Logger
}

// New creates an empty Web whose IndexOf/LastIndexOf compare values with ==.
// Returns ErrInvalidArgument when an option is malformed.
// Complexity: O(len(opts)).
func New[T comparable](opts ...Option) (*Web[T], error) {
	return NewFunc(func(a, b T) bool { return a == b }, opts...)
}

// NewFunc creates an empty Web for any value type, using equal for searches.
// Returns ErrInvalidArgument when equal is nil or an option is malformed.
func NewFunc[T any](equal func(a, b T) bool, opts ...Option) (*Web[T], error) {
	if equal == nil {
		return nil, fmt.Errorf("%w: nil equality function", ErrInvalidArgument)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Web[T]{
		maxPerLevel: o.maxPerLevel,
		equal:       equal,
		logger:      o.logger,
	}, nil
}

// MaxPerLevel returns the construction-time level capacity.
func (w *Web[T]) MaxPerLevel() int { return w.maxPerLevel }

// Size returns the number of stored elements. Complexity: O(1).
func (w *Web[T]) Size() int { return w.size }

// Levels returns how many levels currently hold at least one node.
func (w *Web[T]) Levels() int {
	if w.size == 0 {
		return 0
	}

	return (w.size-1)/w.maxPerLevel + 1
}

// LastLevel returns the number of the last occupied level, or -1 when empty.
func (w *Web[T]) LastLevel() int {
	if w.size == 0 {
		return -1
	}

	return (w.size - 1) / w.maxPerLevel
}

// LastPosition returns the in-level position of the last node, or -1 when empty.
func (w *Web[T]) LastPosition() int {
	if w.size == 0 {
		return -1
	}

	return (w.size - 1) % w.maxPerLevel
}

// Node returns the live node behind id.
// The pointer is only valid until the next mutating call on w.
func (w *Web[T]) Node(id NodeID) (*Node[T], bool) {
	if id <= NilNode || int(id) > len(w.nodes) {
		return nil, false
	}
	n := w.at(id)
	if !n.used {
		return nil, false
	}

	return n, true
}
