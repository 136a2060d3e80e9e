// SPDX-License-Identifier: MIT
// File: arena.go
// Role: node allocation, lookup by flat index and vertical re-linking.

package web

import "fmt"

// at returns the arena slot of a live id. Callers guarantee id != NilNode.
func (w *Web[T]) at(id NodeID) *Node[T] { return &w.nodes[id-1] }

// alloc stores value in a recycled or fresh slot and returns its handle.
// The returned node is detached.
func (w *Web[T]) alloc(value T) NodeID {
	if k := len(w.free); k > 0 {
		id := w.free[k-1]
		w.free = w.free[:k-1]
		n := w.at(id)
		n.Reset()
		n.value = value
		n.used = true

		return id
	}
	w.nodes = append(w.nodes, Node[T]{value: value, used: true})

	return NodeID(len(w.nodes))
}

// release detaches id and hands its slot to the free list.
func (w *Web[T]) release(id NodeID) {
	n := w.at(id)
	n.Reset()
	n.used = false
	w.free = append(w.free, id)
}

// locate finds the node at flat index i, 0 <= i < size.
//
// From the head it descends i/max levels through NextLevel and then walks
// i%max steps through Next; when the tail is closer it walks back through
// Prev instead.
// Complexity: O(i/max + max) or O(size-i).
func (w *Web[T]) locate(i int) (NodeID, error) {
	level, pos := i/w.maxPerLevel, i%w.maxPerLevel
	id := w.head
	if back := w.size - 1 - i; back < level+pos {
		id = w.tail
		for ; back > 0 && id != NilNode; back-- {
			id = w.at(id).prev
		}
	} else {
		for ; level > 0 && id != NilNode; level-- {
			id = w.at(id).nextLevel
		}
		for ; pos > 0 && id != NilNode; pos-- {
			id = w.at(id).next
		}
	}
	if id == NilNode {
		return NilNode, fmt.Errorf("%w: no node reachable at index %d (size %d)", ErrInconsistent, i, w.size)
	}

	return id, nil
}

// span returns the handles of flat indices lo..hi inclusive.
func (w *Web[T]) span(lo, hi int) ([]NodeID, error) {
	id, err := w.locate(lo)
	if err != nil {
		return nil, err
	}
	ids := make([]NodeID, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		if id == NilNode {
			return nil, fmt.Errorf("%w: sequence ends before index %d", ErrInconsistent, i)
		}
		ids = append(ids, id)
		id = w.at(id).next
	}

	return ids, nil
}

// relinkAround repairs vertical links after a node was inserted at or
// removed from flat index p, with w.size already updated.
//
// A shift at p keeps every vertical pair whose ends lie on the same side of p.
// Only pairs straddling p change, so nodes in [p-max, p+max] are re-linked and
// everything else is left as is.
// Complexity: O(max + p/max).
func (w *Web[T]) relinkAround(p int) error {
	if w.size == 0 {
		return nil
	}
	// a capacity wider than the web links nothing vertically; clamping keeps p+m and hi+m in range
	m := min(w.maxPerLevel, w.size)
	lo := max(0, p-m)
	hi := min(w.size-1, p+m)
	if lo > hi {
		return nil
	}
	ids, err := w.span(lo, min(w.size-1, hi+m))
	if err != nil {
		return err
	}
	for j := lo; j <= hi; j++ {
		n := w.at(ids[j-lo])
		if j < m {
			n.prevLevel = NilNode
		}
		if j+m < w.size {
			down := ids[j+m-lo]
			n.nextLevel = down
			w.at(down).prevLevel = ids[j-lo]
		} else {
			n.nextLevel = NilNode
		}
	}

	return nil
}
