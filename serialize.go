package avl

import (
	"fmt"
	"strings"
)

// SerializeInfix - render the elements in ascending order, joined by
// sep
func (t *Tree[T]) SerializeInfix(sep string) string {
	var b strings.Builder
	t.root.infix(&b, sep)
	return b.String()
}

// SerializePrefix - render the elements in tree-structural order,
// joined by sep: the root of every subtree before its children. The
// output fixes the physical shape, which makes rotation effects
// visible.
func (t *Tree[T]) SerializePrefix(sep string) string {
	var b strings.Builder
	t.root.prefix(&b, sep)
	return b.String()
}

func (n *node[T]) infix(b *strings.Builder, sep string) {
	if n == nil {
		return
	}
	n.left.infix(b, sep)
	if b.Len() > 0 {
		b.WriteString(sep)
	}
	fmt.Fprint(b, n.element)
	n.right.infix(b, sep)
}

func (n *node[T]) prefix(b *strings.Builder, sep string) {
	if n == nil {
		return
	}
	if b.Len() > 0 {
		b.WriteString(sep)
	}
	fmt.Fprint(b, n.element)
	n.left.prefix(b, sep)
	n.right.prefix(b, sep)
}
