package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the full structural contract of h: a single
// parentless root in a singleton sibling ring, doubly-linked child rings
// with correct parent back-references, heap order on every edge, and a
// size equal to the number of reachable nodes.
func checkInvariants[K, V any](t *testing.T, h *Heap[K, V]) {
	t.Helper()

	if h.root == nil {
		require.Zero(t, h.size, "empty heap must report size 0")

		return
	}
	require.Nil(t, h.root.parent, "root must have no parent")
	require.Same(t, h.root, h.root.left, "root must be a singleton sibling ring")
	require.Same(t, h.root, h.root.right, "root must be a singleton sibling ring")
	require.Equal(t, h.size, countSubtree(t, h, h.root), "size must equal the number of reachable nodes")
}

// countSubtree walks n's subtree, asserting ring and ordering invariants on
// the way, and returns the number of nodes visited.
func countSubtree[K, V any](t *testing.T, h *Heap[K, V], n *Item[K, V]) int {
	t.Helper()

	total := 1
	if c := n.child; c != nil {
		p := c
		for {
			require.Same(t, n, p.parent, "child ring member must reference its parent")
			require.Same(t, p, p.left.right, "sibling ring must be doubly linked")
			require.Same(t, p, p.right.left, "sibling ring must be doubly linked")
			require.False(t, h.less(p.elem.Key, n.elem.Key), "heap order violated: child orders before parent")
			total += countSubtree(t, h, p)
			p = p.right
			if p == c {
				break
			}
		}
	}

	return total
}

// singleton builds a detached node for direct primitive tests.
func singleton[K, V any](key K, value V) *Item[K, V] {
	n := &Item[K, V]{elem: Element[K, V]{Key: key, Value: value}}
	n.left, n.right = n, n

	return n
}
