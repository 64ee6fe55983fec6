package avl

// Contains - true if x is in the set. Search never mutates height or
// shape.
func (t *Tree[T]) Contains(x T) bool {
	return t.contains(t.root, x)
}

func (t *Tree[T]) contains(p *node[T], x T) bool {
	if p == nil {
		return false
	}
	switch c := t.cmp(x, p.element); {
	case c < 0:
		return t.contains(p.left, x)
	case c > 0:
		return t.contains(p.right, x)
	default:
		return true
	}
}

// Min - the smallest element in the set; false when the tree is empty
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	p := t.root
	for p.left != nil {
		p = p.left
	}
	return p.element, true
}

// Max - the largest element in the set; false when the tree is empty
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	p := t.root
	for p.right != nil {
		p = p.right
	}
	return p.element, true
}
