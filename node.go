package avl

// node is the storage unit the tree manipulates: an element, the two
// child links the node exclusively owns, and a cached subtree height.
// There are no parent pointers; rebalancing passes ownership back up
// the recursion instead of reaching upward.
type node[T any] struct {
	element     T
	left, right *node[T]
	height      int
}

func newNode[T any](element T) *node[T] {
	return &node[T]{element: element}
}

// height of a possibly absent subtree: -1 when nil, so a leaf has
// height 0
func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

// balanceFactor is height(left) - height(right)
func (n *node[T]) balanceFactor() int {
	return height(n.left) - height(n.right)
}

// update recomputes the cached height from the current children
func (n *node[T]) update() {
	lh := height(n.left)
	rh := height(n.right)
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
}
