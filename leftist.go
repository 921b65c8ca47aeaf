package leftist

import (
	"cmp"
	"errors"
)

// ErrEmpty is returned by Peek and Pop when the heap contains no elements.
var ErrEmpty = errors.New("leftist: empty heap")

// Less reports whether a orders strictly before b. The largest element under
// it is the top of the heap. A Less may fail on any call; the error is
// returned unwrapped by the operation that invoked it and the heaps involved
// are left exactly as they were.
type Less[T any] func(a, b T) (bool, error)

// Heap is a mergeable max-priority queue backed by a leftist tree. The zero
// value is not usable; create heaps with New or NewFunc.
//
// A Heap is not safe for concurrent mutation. Distinct heaps are independent
// and may be used from different goroutines.
type Heap[T any] struct {
	less Less[T]
	root *node[T]
	size int
}

// New returns an empty heap ordered by the natural ordering of T. Its
// comparator never fails.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc(func(a, b T) (bool, error) {
		return cmp.Less(a, b), nil
	})
}

// NewFunc returns an empty heap ordered by less.
func NewFunc[T any](less Less[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return h.size
}

// IsEmpty reports whether the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.size == 0
}

// Peek returns the largest element without removing it. It returns ErrEmpty
// on an empty heap and never mutates.
func (h *Heap[T]) Peek() (T, error) {
	if h.root == nil {
		var zero T
		return zero, ErrEmpty
	}
	return h.root.data, nil
}

// Push inserts a copy of v. If the comparator fails, the heap is unchanged
// and the comparator's error is returned.
func (h *Heap[T]) Push(v T) error {
	root, err := merge(h.less, h.root, &node[T]{data: v})
	if err != nil {
		return err
	}
	h.root = root
	h.size++
	return nil
}

// Pop removes and returns the largest element. It returns ErrEmpty on an
// empty heap. If the comparator fails while the root's subtrees are being
// merged, the heap is unchanged and the comparator's error is returned.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if h.root == nil {
		return zero, ErrEmpty
	}
	root, err := merge(h.less, h.root.left, h.root.right)
	if err != nil {
		return zero, err
	}
	top := h.root.data
	h.root = root
	h.size--
	return top, nil
}

// Merge moves every element of other into h in O(log n) by melding the two
// trees; no elements are copied. On success other is left empty and valid.
// Merging a heap with itself, or with nil, is a no-op. The receiver's
// comparator orders the merged tree.
//
// If the comparator fails, both heaps are unchanged and the comparator's
// error is returned.
func (h *Heap[T]) Merge(other *Heap[T]) error {
	if other == nil || other == h {
		return nil
	}
	root, err := merge(h.less, h.root, other.root)
	if err != nil {
		return err
	}
	h.root = root
	h.size += other.size
	other.root = nil
	other.size = 0
	return nil
}

// Clone returns an independent deep copy of the heap. Mutating one heap never
// affects the other. The copy uses the same comparator.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		less: h.less,
		root: clone(h.root),
		size: h.size,
	}
}
