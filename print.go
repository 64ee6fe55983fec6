package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print - write an ASCII graphic representation of the tree to w,
// right subtree on top, and return the maximum depth
func (t *Tree[T]) Print(w io.Writer) int {
	return printTree(w, t.root, "", rootBranch)
}

func printTree[T any](w io.Writer, n *node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}
	rd := 0
	ld := 0
	if n.right != nil {
		pad := "       "
		if br == leftBranch {
			pad = "|      "
		}
		rd = printTree(w, n.right, prefix+pad, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d\n", n.element, n.height)
	if n.left != nil {
		pad := "       "
		if br == rightBranch {
			pad = "|      "
		}
		ld = printTree(w, n.left, prefix+pad, leftBranch)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
