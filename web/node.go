// SPDX-License-Identifier: MIT
// File: node.go
// Role: the Node record stored in a Web's arena.
// Policy:
//   - Node carries no validation; the owning Web enforces every invariant.
//   - Links are NodeID handles into the arena, never owning pointers.

package web

import "fmt"

// NodeID is a stable handle of a node inside the arena of the Web that owns it.
// A handle stays valid until its node is removed or the Web is cleared.
type NodeID int

// NilNode is the zero NodeID and marks an absent link.
const NilNode NodeID = 0

// Node holds one value and four links:
// Next/Prev to the neighbours in the flat sequence and
// NextLevel/PrevLevel to the node at the same position on the adjacent levels.
//
// The zero Node is detached and holds the zero value.
type Node[T any] struct {
	value     T
	next      NodeID
	prev      NodeID
	nextLevel NodeID
	prevLevel NodeID

	used bool // slot is live in its arena; untouched by Reset
}

// NewNode returns a detached node holding value.
func NewNode[T any](value T) Node[T] {
	return Node[T]{value: value}
}

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the stored value.
func (n *Node[T]) SetValue(value T) { n.value = value }

// Next returns the following node in the flat sequence.
func (n *Node[T]) Next() NodeID { return n.next }

// SetNext sets the following node in the flat sequence.
func (n *Node[T]) SetNext(id NodeID) { n.next = id }

// Prev returns the preceding node in the flat sequence.
func (n *Node[T]) Prev() NodeID { return n.prev }

// SetPrev sets the preceding node in the flat sequence.
func (n *Node[T]) SetPrev(id NodeID) { n.prev = id }

// NextLevel returns the node at the same position one level down.
func (n *Node[T]) NextLevel() NodeID { return n.nextLevel }

// SetNextLevel sets the node at the same position one level down.
func (n *Node[T]) SetNextLevel(id NodeID) { n.nextLevel = id }

// PrevLevel returns the node at the same position one level up.
func (n *Node[T]) PrevLevel() NodeID { return n.prevLevel }

// SetPrevLevel sets the node at the same position one level up.
func (n *Node[T]) SetPrevLevel(id NodeID) { n.prevLevel = id }

// ResetPointers clears all four links.
func (n *Node[T]) ResetPointers() {
	n.next = NilNode
	n.prev = NilNode
	n.nextLevel = NilNode
	n.prevLevel = NilNode
}

// Reset clears all four links and zeroes the value, fully detaching the node.
func (n *Node[T]) Reset() {
	var zero T
	n.value = zero
	n.ResetPointers()
}

// String renders the node with its value and raw link handles (0 = none).
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node{value=%v, prev=%d, next=%d, prevLevel=%d, nextLevel=%d}",
		n.value, n.prev, n.next, n.prevLevel, n.nextLevel)
}
