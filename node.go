package leftist

// node is a single element of a leftist tree. Each node is owned by exactly
// one parent (or by the heap root); subtrees are never shared between heaps.
type node[T any] struct {
	data        T
	left, right *node[T]
	dist        int
}

// npl returns the null-path-length of a subtree, -1 for an empty one.
func npl[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.dist
}

// merge combines two leftist subtrees into one and returns the new root. It
// rearranges existing nodes and allocates nothing. The comparator is consulted
// exactly once per recursion frame.
//
// Every mutation of a frame (right-child assignment, child swap, dist update)
// happens strictly after the recursive call has returned. A comparator error
// at any depth therefore unwinds without having written to any node reachable
// from a or b, so callers can treat a non-nil error as "nothing happened".
func merge[T any](less Less[T], a, b *node[T]) (*node[T], error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}

	aLess, err := less(a.data, b.data)
	if err != nil {
		return nil, err
	}

	// On a tie the first operand stays on top, which keeps the shape
	// deterministic for a given call sequence.
	if !aLess {
		right, err := merge(less, a.right, b)
		if err != nil {
			return nil, err
		}
		a.right = right
		if npl(a.left) < npl(a.right) {
			a.left, a.right = a.right, a.left
		}
		a.dist = npl(a.right) + 1
		return a, nil
	}

	right, err := merge(less, a, b.right)
	if err != nil {
		return nil, err
	}
	b.right = right
	if npl(b.left) < npl(b.right) {
		b.left, b.right = b.right, b.left
	}
	b.dist = npl(b.right) + 1
	return b, nil
}

// clone deep-copies a subtree. The copy shares no nodes with the source and
// carries identical data and dist at every position.
func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		data:  n.data,
		left:  clone(n.left),
		right: clone(n.right),
		dist:  n.dist,
	}
}
