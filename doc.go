// Package leftist implements a generic mergeable max-priority queue backed by
// a leftist tree. Alongside the usual push, pop and peek operations it
// supports melding one queue into another in logarithmic time, moving nodes
// instead of copying elements.
//
// The ordering is determined by a user-provided comparison function. Unlike
// most container comparators it is allowed to fail: every operation that
// consults it either completes or returns the comparator's error with all
// involved heaps left exactly as they were. This holds for Merge as well,
// where two heaps are in play at once.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(log n) insertion, deletion and melding of two queues
//   - O(1) peek, length and emptiness checks
//   - O(n) independent deep copies via Clone
//   - Strong failure guarantee under a fallible comparator
//
// Basic usage:
//
//	// Create a max-heap over ints
//	h := leftist.New[int]()
//
//	_ = h.Push(3)
//	_ = h.Push(9)
//	_ = h.Push(5)
//
//	// Remove elements largest-first
//	for !h.IsEmpty() {
//	    v, _ := h.Pop()
//	    fmt.Println(v)
//	}
//
// A custom ordering (here: longest string wins) supplies a comparator:
//
//	h := leftist.NewFunc[string](func(a, b string) (bool, error) {
//	    return len(a) < len(b), nil
//	})
//
// Melding drains the donor into the receiver:
//
//	a, b := leftist.New[int](), leftist.New[int]()
//	// ... fill both ...
//	_ = a.Merge(b) // a now holds the union, b is empty
//
// The heap is not safe for concurrent mutation. Concurrent calls to read-only
// operations (Peek, Len, IsEmpty) are safe while no writer is active, and
// distinct heaps are fully independent.
package leftist
