// SPDX-License-Identifier: MIT
// File: methods_insert.go
// Role: insertion and in-place update.

package web

import (
	"fmt"

	"go.uber.org/zap"
)

// Add appends value at the next free flat position, opening a new level when
// the last one is full.
// Complexity: O(max).
func (w *Web[T]) Add(value T) {
	// appending at size is always in range, so only ErrInconsistent can come back
	if err := w.Insert(w.size, value); err != nil {
		w.logger.Error("add failed", zap.Int("size", w.size), zap.Error(err))
	}
}

// AddLast is an alias of Add.
func (w *Web[T]) AddLast(value T) { w.Add(value) }

// AddFirst inserts value at flat index 0. Every existing node moves one
// position forward; the last node spills into a new level when needed.
// Complexity: O(max).
func (w *Web[T]) AddFirst(value T) {
	if err := w.Insert(0, value); err != nil {
		w.logger.Error("add first failed", zap.Int("size", w.size), zap.Error(err))
	}
}

// Insert places value at flat index, 0 <= index <= Size(), shifting the
// nodes at and after index one position forward.
//
// Errors:
//   - ErrOutOfRange when index is outside [0, Size()].
//   - ErrInconsistent if the link structure is found broken.
//
// Complexity: O(index/max + max).
func (w *Web[T]) Insert(index int, value T) error {
	if index < 0 || index > w.size {
		return fmt.Errorf("%w: insert at %d with size %d", ErrOutOfRange, index, w.size)
	}
	at := NilNode
	if index < w.size {
		var err error
		if at, err = w.locate(index); err != nil {
			return err
		}
	}

	id := w.alloc(value)
	n := w.at(id)
	switch {
	case w.size == 0:
		w.head, w.tail = id, id
	case at == NilNode:
		n.prev = w.tail
		w.at(w.tail).next = id
		w.tail = id
	default:
		before := w.at(at).prev
		n.prev, n.next = before, at
		w.at(at).prev = id
		if before == NilNode {
			w.head = id
		} else {
			w.at(before).next = id
		}
	}
	opened := w.size%w.maxPerLevel == 0 && w.size > 0
	w.size++
	if err := w.relinkAround(index); err != nil {
		return err
	}
	if opened {
		w.logger.Debug("level added", zap.Int("level", w.LastLevel()), zap.Int("size", w.size))
	}

	return nil
}

// Set overwrites the value at flat index.
// Returns ErrOutOfRange when index < 0 or index >= Size().
func (w *Web[T]) Set(index int, value T) error {
	id, err := w.GetNode(index)
	if err != nil {
		return err
	}
	w.at(id).value = value

	return nil
}
