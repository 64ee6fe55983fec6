package avl

import "errors"

// ErrDuplicateElement is returned by Insert when the element is
// already present; the tree is left unchanged.
var ErrDuplicateElement = errors.New("avl: duplicate element")

// Insert - add x to the set. Inserting an element already present
// fails with ErrDuplicateElement.
func (t *Tree[T]) Insert(x T) error {
	root, err := t.insert(t.root, x)
	if err != nil {
		return err
	}
	t.root = root
	t.count += 1
	t.insertions += 1
	return nil
}

// internal routine for insert: returns the new subtree root.
//
// An insertion can unbalance at most one node on the unwind path, so
// at most one rotation, single or double, is applied for the whole
// operation.
func (t *Tree[T]) insert(p *node[T], x T) (*node[T], error) {
	if p == nil { // insert new leaf
		return newNode(x), nil
	}
	switch c := t.cmp(x, p.element); {
	case c < 0:
		left, err := t.insert(p.left, x)
		if err != nil {
			return nil, err
		}
		p.left = left

		if height(p.left)-height(p.right) == 2 {
			if t.cmp(x, p.left.element) < 0 {
				// left-left
				p = rotateRight(p)
				t.singleRotations += 1
			} else {
				// left-right
				p = rotateLeftRight(p)
				t.doubleRotations += 1
			}
		}
	case c > 0:
		right, err := t.insert(p.right, x)
		if err != nil {
			return nil, err
		}
		p.right = right

		if height(p.right)-height(p.left) == 2 {
			if t.cmp(x, p.right.element) > 0 {
				// right-right
				p = rotateLeft(p)
				t.singleRotations += 1
			} else {
				// right-left
				p = rotateRightLeft(p)
				t.doubleRotations += 1
			}
		}
	default:
		return nil, ErrDuplicateElement
	}
	p.update()
	return p, nil
}
