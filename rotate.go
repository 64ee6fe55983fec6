package avl

// The four rebalancing primitives. Each takes ownership of a subtree
// root and returns the new root. Heights are recomputed from the
// children as they stand after the relink, demoted node first, or
// the promoted node would cache a stale value.

// rotateRight promotes the left child: the repair for a left-left
// imbalance.
func rotateRight[T any](n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	l.right = n
	n.update()
	l.update()
	return l
}

// rotateLeft promotes the right child: the repair for a right-right
// imbalance.
func rotateLeft[T any](n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	r.left = n
	n.update()
	r.update()
	return r
}

// rotateLeftRight rotates the left child left, then n right: the
// repair for a left-right imbalance.
func rotateLeftRight[T any](n *node[T]) *node[T] {
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}

// rotateRightLeft rotates the right child right, then n left: the
// repair for a right-left imbalance.
func rotateRightLeft[T any](n *node[T]) *node[T] {
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}
