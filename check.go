package avl

// Read-only validators used for verification rather than normal
// operation. Both walk the whole tree, so they are O(n); nothing in
// the regular operations calls them.

// CheckBalance - recompute every subtree depth independently of the
// cached heights and confirm that every node satisfies the AVL
// property and caches the depth it should
func (t *Tree[T]) CheckBalance() bool {
	_, ok := checkBalance(t.root)
	return ok
}

func checkBalance[T any](n *node[T]) (depth int, ok bool) {
	if n == nil {
		return -1, true
	}
	ld, lok := checkBalance(n.left)
	rd, rok := checkBalance(n.right)
	depth = ld + 1
	if rd > ld {
		depth = rd + 1
	}
	if !lok || !rok {
		return depth, false
	}
	if ld-rd < -1 || ld-rd > 1 {
		return depth, false
	}
	return depth, n.height == depth
}

// CheckOrdering - confirm the search-tree ordering at every node, not
// just along one spine: each element must sort inside the open
// interval its ancestors impose
func (t *Tree[T]) CheckOrdering() bool {
	return t.checkOrdering(t.root, nil, nil)
}

func (t *Tree[T]) checkOrdering(n *node[T], min, max *T) bool {
	if n == nil {
		return true
	}
	if min != nil && t.cmp(n.element, *min) <= 0 {
		return false
	}
	if max != nil && t.cmp(n.element, *max) >= 0 {
		return false
	}
	return t.checkOrdering(n.left, min, &n.element) &&
		t.checkOrdering(n.right, &n.element, max)
}

// CheckCount - confirm the running element count matches the number
// of nodes reachable from the root
func (t *Tree[T]) CheckCount() bool {
	return countNodes(t.root) == t.count
}

func countNodes[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}
