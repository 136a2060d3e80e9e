// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: copying a Web.
// Determinism:
//   - Copy keeps NodeIDs, so GetNode(i) returns the same handle on both Webs
//     right after copying.

package web

import "slices"

// Copy returns a Web with the same capacity, equality and logger, holding an
// independently linked sequence of nodes with equal values.
//
// The copy is shallow: values are copied by assignment, so pointers, maps and
// slices stored in the Web are shared with the original. Links are not shared;
// mutating either Web never rewires the other.
// Complexity: O(arena size).
func (w *Web[T]) Copy() *Web[T] {
	return &Web[T]{
		nodes:       slices.Clone(w.nodes),
		free:        slices.Clone(w.free),
		head:        w.head,
		tail:        w.tail,
		size:        w.size,
		maxPerLevel: w.maxPerLevel,
		equal:       w.equal,
		logger:      w.logger,
	}
}
