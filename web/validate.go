// SPDX-License-Identifier: MIT
// File: validate.go
// Role: full audit of the link structure.

package web

import "fmt"

// Validate walks the whole Web and checks every invariant:
// the Next/Prev chain is symmetric, starts at the head, ends at the tail and
// has exactly Size() nodes; node i links down to node i+max and up to
// node i-max (or to nothing past the edges); free slots are not reachable.
//
// A non-nil result wraps ErrInconsistent and names the first violation.
// Complexity: O(arena size).
func (w *Web[T]) Validate() error {
	ids := make([]NodeID, 0, w.size)
	prev := NilNode
	for id := w.head; id != NilNode; id = w.at(id).next {
		if int(id) > len(w.nodes) || len(ids) > len(w.nodes) {
			return fmt.Errorf("%w: chain escapes the arena at node %d", ErrInconsistent, id)
		}
		n := w.at(id)
		if !n.used {
			return fmt.Errorf("%w: released node %d is linked at index %d", ErrInconsistent, id, len(ids))
		}
		if n.prev != prev {
			return fmt.Errorf("%w: index %d has prev %d, want %d", ErrInconsistent, len(ids), n.prev, prev)
		}
		ids = append(ids, id)
		prev = id
	}
	if len(ids) != w.size {
		return fmt.Errorf("%w: chain holds %d nodes, size is %d", ErrInconsistent, len(ids), w.size)
	}
	if prev != w.tail {
		return fmt.Errorf("%w: chain ends at %d, tail is %d", ErrInconsistent, prev, w.tail)
	}
	if live := len(w.nodes) - len(w.free); live != w.size {
		return fmt.Errorf("%w: arena holds %d live slots, size is %d", ErrInconsistent, live, w.size)
	}

	m := min(w.maxPerLevel, len(ids))
	for i, id := range ids {
		n := w.at(id)
		wantDown, wantUp := NilNode, NilNode
		if m < len(ids)-i {
			wantDown = ids[i+m]
		}
		if i-m >= 0 {
			wantUp = ids[i-m]
		}
		if n.nextLevel != wantDown {
			return fmt.Errorf("%w: index %d has nextLevel %d, want %d", ErrInconsistent, i, n.nextLevel, wantDown)
		}
		if n.prevLevel != wantUp {
			return fmt.Errorf("%w: index %d has prevLevel %d, want %d", ErrInconsistent, i, n.prevLevel, wantUp)
		}
	}

	return nil
}
