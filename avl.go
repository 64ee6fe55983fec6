package avl

import "golang.org/x/exp/constraints"

// Tree - holds the root node of an AVL tree ordered by the comparison
// function supplied at construction, plus counters used only for
// diagnostics and testing.
type Tree[T any] struct {
	root  *node[T]
	cmp   func(a, b T) int
	count int

	insertions      int
	singleRotations int
	doubleRotations int
}

// New - create an initially empty tree ordered by cmp. cmp must
// define a total order: negative when a sorts before b, zero when
// they are equal, positive when a sorts after b.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// Compare - a comparison function for any type with built-in ordering
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// NewOrdered - create an initially empty tree of a type with built-in
// ordering
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New[T](Compare[T])
}

// IsEmpty - true if the tree holds no elements
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// MakeEmpty - drop every node; the garbage collector reclaims them
func (t *Tree[T]) MakeEmpty() {
	t.root = nil
	t.count = 0
}

// Count - number of elements currently in the tree
func (t *Tree[T]) Count() int {
	return t.count
}

// Height - height of the tree: -1 when empty, 0 for a single element
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Insertions - number of successful insertions performed
func (t *Tree[T]) Insertions() int {
	return t.insertions
}

// SingleRotations - number of single rotations applied
func (t *Tree[T]) SingleRotations() int {
	return t.singleRotations
}

// DoubleRotations - number of double rotations applied
func (t *Tree[T]) DoubleRotations() int {
	return t.doubleRotations
}
