package avl

// Remove - delete x from the set. Removing an element that is not
// present is a no-op, not an error: deletion is set difference.
func (t *Tree[T]) Remove(x T) {
	t.root = t.remove(t.root, x)
}

// internal routine for remove: returns the new subtree root
func (t *Tree[T]) remove(p *node[T], x T) *node[T] {
	if p == nil { // x not in tree
		return nil
	}
	switch c := t.cmp(x, p.element); {
	case c < 0:
		p.left = t.remove(p.left, x)
	case c > 0:
		p.right = t.remove(p.right, x)
	default: // found: delete p
		if p.left == nil || p.right == nil {
			// splice out: at most one child takes this node's place
			t.count -= 1
			if p.left == nil {
				p = p.right
			} else {
				p = p.left
			}
		} else {
			// two children: copy the in-order successor here, then
			// delete the successor from the right subtree
			s := p.right
			for s.left != nil {
				s = s.left
			}
			p.element = s.element
			p.right = t.remove(p.right, s.element)
		}
	}
	if p == nil {
		return nil
	}
	p.update()
	return t.rebalance(p)
}

// rebalance repairs a node whose children's heights may differ by two
// after a removal below it. Unlike insertion, a removal can shrink a
// subtree that was already balanced, so every ancestor on the unwind
// path is checked.
func (t *Tree[T]) rebalance(p *node[T]) *node[T] {
	switch balance := p.balanceFactor(); {
	case balance > 1:
		if p.left.balanceFactor() >= 0 {
			// left-left
			p = rotateRight(p)
			t.singleRotations += 1
		} else {
			// left-right
			p = rotateLeftRight(p)
			t.doubleRotations += 1
		}
	case balance < -1:
		if p.right.balanceFactor() <= 0 {
			// right-right
			p = rotateLeft(p)
			t.singleRotations += 1
		} else {
			// right-left
			p = rotateRightLeft(p)
			t.doubleRotations += 1
		}
	}
	return p
}
