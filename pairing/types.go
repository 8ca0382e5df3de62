// Package pairing defines the Heap, Element and Item types, comparator
// configuration, and sentinel errors for the pairing heap.
package pairing

import (
	"cmp"
	"errors"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates that Min or DeleteMin was called on a heap of size 0.
	ErrEmptyHeap = errors.New("pairing: heap is empty")

	// ErrInvalidHandle indicates that a handle does not refer to a live element,
	// typically because that element was already removed or the heap was cleared.
	ErrInvalidHandle = errors.New("pairing: handle does not refer to a live element")

	// ErrNilHeap indicates that Meld was given a nil heap.
	ErrNilHeap = errors.New("pairing: other heap is nil")

	// ErrSelfMeld indicates an attempt to meld a heap with itself.
	ErrSelfMeld = errors.New("pairing: cannot meld a heap with itself")

	// ErrNilLess indicates that NewFunc was given a nil comparator.
	// NewFunc panics with this error's message; a heap without an order is unusable.
	ErrNilLess = errors.New("pairing: comparator must be non-nil")
)

// LessFunc reports whether a orders strictly before b.
// It must define a strict weak order over K. The default used by New is
// ascending cmp.Less, which yields a min-heap; a "greater" predicate
// yields a max-heap with no other change.
type LessFunc[K any] func(a, b K) bool

// Element is the (key, value) pair stored in the heap, returned by Min,
// DeleteMin and Remove as an immutable snapshot. Key is the priority at the
// time the element was read; Value is the caller-supplied payload, fixed for
// the element's lifetime.
type Element[K, V any] struct {
	// Key is the element's priority under the heap's comparator.
	Key K

	// Value is the opaque payload supplied to Insert.
	Value V
}

// Item is an opaque handle to one live element, returned by Insert and
// accepted by Remove, DecreaseKey and Contains. A handle is a non-owning
// reference: it stays valid exactly until its element is removed (via
// DeleteMin, Remove or Clear) and is never reused for another element.
// After Meld, handles issued by the absorbed heap remain valid and target
// the absorbing heap.
//
// Internally an Item is the tree node itself: the element plus four
// structural links. parent is nil iff the node is the root. child anchors
// one arbitrary member of the node's child ring. left and right form a
// circular doubly-linked ring over all siblings; a node with no siblings
// links to itself. A removed node has all four links nil, which is how a
// stale handle is detected instead of corrupting the tree.
type Item[K, V any] struct {
	elem Element[K, V]

	parent *Item[K, V]
	child  *Item[K, V]
	left   *Item[K, V]
	right  *Item[K, V]
}

// Key returns the element's current priority.
// It reflects any DecreaseKey applied since insertion.
// The result is unspecified for a handle whose element was removed.
func (it *Item[K, V]) Key() K { return it.elem.Key }

// Value returns the caller-supplied payload, immutable for the element's lifetime.
func (it *Item[K, V]) Value() V { return it.elem.Value }

// live reports whether the handle refers to a live element.
// Live nodes always sit in a sibling ring (self-linked when alone), so a
// nil left link is the removed marker. A nil *Item is never live.
func (it *Item[K, V]) live() bool { return it != nil && it.left != nil }

// Heap is a pairing heap: an addressable, meldable priority queue.
// The zero value is not usable; construct with New or NewFunc.
//
// A Heap owns its root exclusively and, through parent/child/sibling links,
// every reachable node. It is not safe for concurrent use.
type Heap[K, V any] struct {
	// less orders keys; fixed at construction.
	less LessFunc[K]

	// root is the unique node with no parent, or nil when the heap is empty.
	root *Item[K, V]

	// size is the number of live elements reachable from root.
	size int
}

// New returns an empty min-heap over any ordered key type, using ascending
// cmp.Less as the comparator.
//
// Complexity: O(1).
func New[K cmp.Ordered, V any]() *Heap[K, V] {
	return &Heap[K, V]{less: cmp.Less[K]}
}

// NewFunc returns an empty heap ordered by the supplied comparator.
// Pass a "greater" predicate to obtain a max-heap.
//
// NewFunc panics with ErrNilLess's message when less is nil: a missing
// comparator is a construction-time programming error, not a runtime
// condition (runtime conditions are reported via the sentinel errors).
//
// Complexity: O(1).
func NewFunc[K, V any](less LessFunc[K]) *Heap[K, V] {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	return &Heap[K, V]{less: less}
}
