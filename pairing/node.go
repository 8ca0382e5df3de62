// This file holds the structural primitives every public operation is built
// from: merge (two-root union), combineSiblings (multi-way union after a
// root removal), cut (detach from parent), and release (handle
// invalidation). All four mutate links only; none of them allocates.

package pairing

// merge unions two subtree roots and returns the resulting root.
// Either operand may be nil, in which case the other is returned unchanged.
// Non-nil operands must be detached: no parent, no siblings.
//
// The node ordering no later wins and adopts the other as a child, spliced
// into the child ring next to the current anchor. On equal keys x wins;
// callers rely on this to steer which element surfaces first.
//
// At most one comparator call, O(1).
func (h *Heap[K, V]) merge(x, y *Item[K, V]) *Item[K, V] {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}
	if h.less(y.elem.Key, x.elem.Key) {
		x, y = y, x
	}

	y.parent = x
	if anchor := x.child; anchor == nil {
		x.child = y
	} else {
		y.left = anchor.left
		anchor.left.right = y
		y.right = anchor
		anchor.left = y
		x.child = y
	}

	return x
}

// appendRun appends node n to the intermediate run list ending at end and
// returns the new end. The run list reuses left/right as a non-circular
// doubly-linked list; the front node carries a nil left as terminator.
func appendRun[K, V any](end, n *Item[K, V]) *Item[K, V] {
	if end == nil {
		return n
	}
	end.right = n
	n.left = end

	return n
}

// combineSiblings unions an entire sibling ring (the former children of a
// removed node) into a single root and returns it. x is any member of the
// ring, or nil for an empty ring.
//
// Two phases, both required for the amortized bounds:
//  1. Walk the ring left to right, merging adjacent pairs; each pair root is
//     detached and appended to an intermediate run list.
//  2. Fold the run list from its right end leftward, merging the running
//     result with the next run to its left.
//
// A naive single-direction fold would break the o(log n) decrease-key
// bound; the pass order and the merge tie-break must stay as they are.
//
// O(k) comparator calls for k siblings; amortized O(log n) overall.
func (h *Heap[K, V]) combineSiblings(x *Item[K, V]) *Item[K, V] {
	if x == nil {
		return nil
	}

	// Phase 1: left-to-right pairwise merging.
	var end *Item[K, V]
	p := x
	for {
		n1, n2 := p, p.right
		n1.parent = nil
		n1.left, n1.right = n1, n1
		if n2 == x {
			// Odd ring: the last node forms a run of its own.
			n1.left = nil
			end = appendRun(end, n1)

			break
		}
		p = n2.right
		n2.parent = nil
		n2.left, n2.right = n2, n2
		n1 = h.merge(n1, n2)
		n1.left = nil
		end = appendRun(end, n1)
		if p == x {
			break
		}
	}

	// Phase 2: right-to-left folding of the run list.
	res := end
	p = end.left
	res.left, res.right = res, res
	for p != nil {
		prev := p.left
		p.left, p.right = p, p
		res = h.merge(res, p)
		p = prev
	}

	return res
}

// cut detaches n from its parent, leaving n a valid merge operand:
// no parent, singleton sibling ring. Cutting the root is a no-op.
//
// When n was the parent's child anchor, the anchor moves to a remaining
// sibling, or is cleared if n was the only child.
//
// O(1), no comparator calls.
func (h *Heap[K, V]) cut(n *Item[K, V]) {
	if n.parent == nil {
		return
	}
	if n.left == n {
		n.parent.child = nil
	} else {
		if n.parent.child == n {
			n.parent.child = n.left
		}
		n.left.right = n.right
		n.right.left = n.left
		n.left, n.right = n, n
	}
	n.parent = nil
}

// release nils every link of n, marking its handle dead (see Item.live).
// The node must already be detached from the tree.
func (h *Heap[K, V]) release(n *Item[K, V]) {
	n.parent, n.child, n.left, n.right = nil, nil, nil, nil
}
