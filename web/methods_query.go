// SPDX-License-Identifier: MIT
// File: methods_query.go
// Role: positional, per-level and value-based reads.

package web

import (
	"fmt"
	"iter"
)

// Get returns the value at flat index.
// Returns ErrOutOfRange when index < 0 or index >= Size().
// Complexity: O(index/max + max).
func (w *Web[T]) Get(index int) (T, error) {
	id, err := w.GetNode(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return w.at(id).value, nil
}

// GetNode returns the handle of the node at flat index.
func (w *Web[T]) GetNode(index int) (NodeID, error) {
	if index < 0 || index >= w.size {
		return NilNode, fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, index, w.size)
	}

	return w.locate(index)
}

// First returns the value at flat index 0, or ErrEmpty.
func (w *Web[T]) First() (T, error) {
	if w.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return w.at(w.head).value, nil
}

// Last returns the value at flat index Size()-1, or ErrEmpty.
func (w *Web[T]) Last() (T, error) {
	if w.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return w.at(w.tail).value, nil
}

// FirstNode returns the handle of the head node, or ErrEmpty.
func (w *Web[T]) FirstNode() (NodeID, error) {
	if w.size == 0 {
		return NilNode, ErrEmpty
	}

	return w.head, nil
}

// LastNode returns the handle of the tail node, or ErrEmpty.
func (w *Web[T]) LastNode() (NodeID, error) {
	if w.size == 0 {
		return NilNode, ErrEmpty
	}

	return w.tail, nil
}

// checkLevel reports ErrOutOfRange unless level is currently occupied.
func (w *Web[T]) checkLevel(level int) error {
	if level < 0 || level >= w.Levels() {
		return fmt.Errorf("%w: level %d with %d levels", ErrOutOfRange, level, w.Levels())
	}

	return nil
}

// LevelNodes returns the handles on level in position order.
// Returns ErrOutOfRange when the level does not exist.
// Complexity: O(level + max).
func (w *Web[T]) LevelNodes(level int) ([]NodeID, error) {
	if err := w.checkLevel(level); err != nil {
		return nil, err
	}
	first := level * w.maxPerLevel
	last := first + min(w.maxPerLevel, w.size-first) - 1

	return w.span(first, last)
}

// Level returns the values on level in position order.
// Returns ErrOutOfRange when the level does not exist.
func (w *Web[T]) Level(level int) ([]T, error) {
	ids, err := w.LevelNodes(level)
	if err != nil {
		return nil, err
	}
	values := make([]T, len(ids))
	for i, id := range ids {
		values[i] = w.at(id).value
	}

	return values, nil
}

// PrevLevel returns the values of the level preceding level.
// Returns ErrOutOfRange when level does not exist or is level 0.
func (w *Web[T]) PrevLevel(level int) ([]T, error) {
	if err := w.checkLevel(level); err != nil {
		return nil, err
	}
	if level == 0 {
		return nil, fmt.Errorf("%w: level 0 has no previous level", ErrOutOfRange)
	}

	return w.Level(level - 1)
}

// MaxIndexForLevel returns the highest flat index present on level:
// (level+1)*max-1 for a full level, Size()-1 for a partial last level.
// Returns 0 and ErrOutOfRange when the level does not exist.
// Complexity: O(1).
func (w *Web[T]) MaxIndexForLevel(level int) (int, error) {
	if err := w.checkLevel(level); err != nil {
		return 0, err
	}
	first := level * w.maxPerLevel

	return first + min(w.maxPerLevel, w.size-first) - 1, nil
}

// IndexOf returns the first flat index holding a value equal to value, or NotFound.
// Complexity: O(size).
func (w *Web[T]) IndexOf(value T) int {
	return w.IndexFunc(func(v T) bool { return w.equal(v, value) })
}

// LastIndexOf returns the last flat index holding a value equal to value, or NotFound.
// The scan runs backwards from the tail.
func (w *Web[T]) LastIndexOf(value T) int {
	i := w.size - 1
	for id := w.tail; id != NilNode; id = w.at(id).prev {
		if w.equal(w.at(id).value, value) {
			return i
		}
		i--
	}

	return NotFound
}

// IndexFunc returns the first flat index whose value satisfies match, or NotFound.
func (w *Web[T]) IndexFunc(match func(T) bool) int {
	for i, v := range w.All() {
		if match(v) {
			return i
		}
	}

	return NotFound
}

// All iterates flat index/value pairs in order.
// The Web must not be mutated during iteration.
func (w *Web[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for id := w.head; id != NilNode; id = w.at(id).next {
			if !yield(i, w.at(id).value) {
				return
			}
			i++
		}
	}
}

// Values returns a snapshot of all values in flat order.
func (w *Web[T]) Values() []T {
	values := make([]T, 0, w.size)
	for _, v := range w.All() {
		values = append(values, v)
	}

	return values
}
