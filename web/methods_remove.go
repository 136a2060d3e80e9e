// SPDX-License-Identifier: MIT
// File: methods_remove.go
// Role: removal and clearing.

package web

import (
	"fmt"

	"go.uber.org/zap"
)

// RemoveFirst unlinks the node at flat index 0 and returns its value.
// Returns ErrEmpty on an empty Web.
func (w *Web[T]) RemoveFirst() (T, error) {
	return w.RemoveAt(0)
}

// RemoveLast unlinks the node at flat index Size()-1 and returns its value.
// Returns ErrEmpty on an empty Web.
func (w *Web[T]) RemoveLast() (T, error) {
	return w.RemoveAt(w.size - 1)
}

// RemoveAt unlinks the node at flat index and returns its value. Nodes after
// index move one position back; a level left without nodes disappears.
//
// Errors:
//   - ErrEmpty when the Web has no elements.
//   - ErrOutOfRange when index is outside [0, Size()).
//
// Complexity: O(index/max + max).
func (w *Web[T]) RemoveAt(index int) (T, error) {
	var zero T
	if w.size == 0 {
		return zero, ErrEmpty
	}
	if index < 0 || index >= w.size {
		return zero, fmt.Errorf("%w: remove at %d with size %d", ErrOutOfRange, index, w.size)
	}
	id, err := w.locate(index)
	if err != nil {
		return zero, err
	}

	n := w.at(id)
	value := n.value
	if n.prev == NilNode {
		w.head = n.next
	} else {
		w.at(n.prev).next = n.next
	}
	if n.next == NilNode {
		w.tail = n.prev
	} else {
		w.at(n.next).prev = n.prev
	}
	// drop every back-reference before the slot is recycled
	if n.prevLevel != NilNode {
		w.at(n.prevLevel).nextLevel = NilNode
	}
	if n.nextLevel != NilNode {
		w.at(n.nextLevel).prevLevel = NilNode
	}
	w.release(id)
	w.size--

	if err = w.relinkAround(index); err != nil {
		return value, err
	}
	if w.size%w.maxPerLevel == 0 {
		w.logger.Debug("level dropped", zap.Int("level", w.size/w.maxPerLevel), zap.Int("size", w.size))
	}

	return value, nil
}

// Clear discards every node. The level capacity and options are kept.
// NodeIDs handed out before Clear become invalid.
// Complexity: O(arena size).
func (w *Web[T]) Clear() {
	released := w.size
	clear(w.nodes)
	w.nodes = w.nodes[:0]
	w.free = w.free[:0]
	w.head, w.tail = NilNode, NilNode
	w.size = 0
	w.logger.Debug("web cleared", zap.Int("released", released))
}
