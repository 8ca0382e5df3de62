// Package pairheap provides an addressable, meldable priority queue for Go:
// a pairing heap with first-class decrease-key and O(1) heap union.
//
// 🚀 Why a pairing heap?
//
//	A binary heap answers "what is the minimum?" quickly, but it cannot
//	cheaply lower the priority of an element already inside it, nor fuse
//	two queues into one. Algorithms that live on those two operations,
//	such as shortest-path search, event-driven simulation and schedulers,
//	end up either rebuilding heaps or flooding them with stale duplicates.
//	A pairing heap gives you:
//		• Insert, Min, Meld   — O(1)
//		• DecreaseKey         — between O(log log n) and O(log n) amortized
//		• DeleteMin, Remove   — O(log n) amortized
//
// ✨ Why choose pairheap?
//
//   - Addressable – Insert returns a stable handle; target any element later
//   - Generic – any key type via a comparator, min- or max-order
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – documented tie-breaking, reproducible extraction order
//
// Everything is organized under one subpackage:
//
//	pairing/ — the Heap type, element handles, and all heap operations
//
// Quick ASCII example of one heap shape after Insert(2), Insert(5),
// Insert(3), Insert(9):
//
//	    2
//	   /|\
//	  9 3 5
//
//	children hang off the minimum; rebalancing happens lazily on DeleteMin.
//
// Dive into pairing/doc.go for the full operation contracts and
// example_test.go for runnable scenarios.
//
//	go get github.com/katalvlaran/pairheap/pairing
package pairheap
