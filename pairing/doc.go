// Package pairing implements an addressable, meldable pairing heap.
//
// A pairing heap is a self-adjusting multi-way tree satisfying the heap
// property: every node orders no later than any node in its subtree.
// Rebalancing is lazy. Insert, Min and Meld only splice pointers; the real
// work happens during DeleteMin, which combines the exposed children with a
// two-phase pairing pass (left-to-right pairwise merging, then a
// right-to-left fold). That pass is what yields the amortized bounds below.
//
// Every element is addressable: Insert returns an *Item handle that stays
// valid until that element is removed, so callers can later Remove it or
// lower its priority with DecreaseKey without searching the tree.
//
// Complexity (amortized, n = heap size):
//
//   - Insert, Min, Meld, Len, Contains:  O(1)
//   - DeleteMin, Remove:                 O(log n)
//   - DecreaseKey:                       between O(log log n) and O(log n)
//
// Ordering:
//
//	New[K, V]() builds a min-heap over any cmp.Ordered key type.
//	NewFunc(less) accepts an arbitrary strict-weak-order comparator;
//	supplying a "greater" predicate turns the same code into a max-heap.
//
// Tie-breaking is deterministic and part of the contract: when two equal
// keys meet in a merge, the first operand wins. DecreaseKey passes the
// updated node first, so decreasing an element to the root's exact key
// promotes that element to the new root.
//
// Errors (sentinel):
//
//	– ErrEmptyHeap     if Min or DeleteMin is called on an empty heap.
//	– ErrInvalidHandle if a handle no longer refers to a live element.
//	– ErrNilHeap       if Meld is given a nil heap.
//	– ErrSelfMeld      if a heap is melded with itself.
//
// Concurrency: a Heap holds no internal locking and assumes exclusive
// access for the full duration of every call. Guard it with one mutex if
// multiple goroutines must share it.
//
// Example usage:
//
//	h := pairing.New[int, string]()
//	slow := h.Insert(40, "job-a")
//	h.Insert(10, "job-b")
//
//	_ = h.DecreaseKey(slow, 5) // job-a jumps the queue
//	e, _ := h.DeleteMin()      // e.Key == 5, e.Value == "job-a"
//
// See example_test.go for complete scenarios, including heap union and
// max-heap ordering.
package pairing
