// This file exposes the public heap operations. Each one validates its
// preconditions before touching any link, so a failed call leaves the heap
// structurally unchanged.

package pairing

// Len returns the number of live elements.
//
// Complexity: O(1).
func (h *Heap[K, V]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
//
// Complexity: O(1).
func (h *Heap[K, V]) IsEmpty() bool { return h.size == 0 }

// Contains reports whether it is a live handle, i.e. usable with Remove and
// DecreaseKey. It never returns an error: a nil or stale handle simply
// reports false. The handle must have been issued by this heap or by a heap
// this one has absorbed via Meld.
//
// Complexity: O(1).
func (h *Heap[K, V]) Contains(it *Item[K, V]) bool { return it.live() }

// Insert adds a new element with the given key and value and returns its
// handle. The handle stays valid until that element is removed; retain it
// if you intend to call Remove or DecreaseKey later.
//
// Complexity: O(1), at most one comparator call.
func (h *Heap[K, V]) Insert(key K, value V) *Item[K, V] {
	n := &Item[K, V]{elem: Element[K, V]{Key: key, Value: value}}
	n.left, n.right = n, n

	// Root goes first so an equal-key incumbent keeps the minimum slot.
	h.root = h.merge(h.root, n)
	h.size++

	return n
}

// Min returns the current minimum element without removing it.
//
// Returns ErrEmptyHeap when the heap is empty.
//
// Complexity: O(1).
func (h *Heap[K, V]) Min() (Element[K, V], error) {
	if h.size == 0 {
		return Element[K, V]{}, ErrEmptyHeap
	}

	return h.root.elem, nil
}

// DeleteMin removes and returns the current minimum element.
// The root's children are combined with the two-phase pairing pass to form
// the new root; the removed element's handle becomes invalid.
//
// Returns ErrEmptyHeap when the heap is empty.
//
// Complexity: O(log n) amortized.
func (h *Heap[K, V]) DeleteMin() (Element[K, V], error) {
	if h.size == 0 {
		return Element[K, V]{}, ErrEmptyHeap
	}

	r := h.root
	out := r.elem
	kids := r.child
	h.release(r)
	h.root = h.combineSiblings(kids)
	h.size--

	return out, nil
}

// Remove removes and returns the element behind the given handle, which may
// sit anywhere in the tree. Removing the root is exactly DeleteMin;
// otherwise the node is cut from its parent, its own children are combined
// into a replacement subtree, and that subtree is merged back with the
// root. The handle becomes invalid.
//
// Returns ErrInvalidHandle when it is nil or its element was already
// removed; the heap is left untouched in that case. Passing a live handle
// issued by an unrelated heap is a precondition violation with undefined
// results.
//
// Complexity: O(log n) amortized.
func (h *Heap[K, V]) Remove(it *Item[K, V]) (Element[K, V], error) {
	if !it.live() {
		return Element[K, V]{}, ErrInvalidHandle
	}
	if it == h.root {
		return h.DeleteMin()
	}

	h.cut(it)
	sub := h.combineSiblings(it.child)
	out := it.elem
	h.release(it)

	// Root first: an equal-key replacement must not displace the minimum.
	h.root = h.merge(h.root, sub)
	h.size--

	return out, nil
}

// DecreaseKey lowers the priority of the element behind the given handle.
// A key that does not improve on the current one (per the comparator) is
// the documented non-error no-op: the heap is left exactly as it was and
// nil is returned. An equal key does proceed, and because the updated node
// is passed to merge first, decreasing an element to the root's exact key
// promotes that element to the new root.
//
// Returns ErrInvalidHandle when it is nil or its element was already
// removed; the heap is left untouched in that case.
//
// Complexity: between O(log log n) and O(log n) amortized.
func (h *Heap[K, V]) DecreaseKey(it *Item[K, V], key K) error {
	if !it.live() {
		return ErrInvalidHandle
	}
	if h.less(it.elem.Key, key) {
		return nil
	}
	if it == h.root {
		it.elem.Key = key

		return nil
	}

	h.cut(it)
	it.elem.Key = key
	h.root = h.merge(it, h.root)

	return nil
}

// Meld moves every element of other into h and leaves other empty.
// Both heaps must have been built with the same ordering. Handles issued by
// other remain valid and now target h. On equal root keys h's root stays
// the minimum.
//
// Returns ErrNilHeap when other is nil and ErrSelfMeld when other is h;
// neither heap is modified in those cases.
//
// Complexity: O(1), at most one comparator call.
func (h *Heap[K, V]) Meld(other *Heap[K, V]) error {
	if other == nil {
		return ErrNilHeap
	}
	if other == h {
		return ErrSelfMeld
	}

	h.root = h.merge(h.root, other.root)
	h.size += other.size
	other.root = nil
	other.size = 0

	return nil
}

// Clear removes every element, leaving the heap empty and invalidating all
// outstanding handles. The traversal uses an explicit work stack rather
// than recursion, so arbitrarily deep (degenerate chain) trees cannot
// overflow the call stack.
//
// Complexity: O(n).
func (h *Heap[K, V]) Clear() {
	if h.root == nil {
		h.size = 0

		return
	}

	stack := make([]*Item[K, V], 0, 64)
	stack = append(stack, h.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Queue the whole child ring before severing n's links.
		if c := n.child; c != nil {
			p := c
			for {
				next := p.right
				stack = append(stack, p)
				if next == c {
					break
				}
				p = next
			}
		}
		h.release(n)
	}

	h.root = nil
	h.size = 0
}
