// Command avldemo is a smoke test for the avl package: build a small
// tree, then print its traversals and shape.
package main

import (
	"fmt"
	"os"

	avl "github.com/meysam81/AVL-Tree-1"
)

func main() {
	tree := avl.NewOrdered[int]()
	for _, v := range []int{2, 1, 4, 5, 9, 3, 6, 7} {
		if err := tree.Insert(v); err != nil {
			fmt.Fprintf(os.Stderr, "insert %d: %s\n", v, err)
			os.Exit(1)
		}
	}

	fmt.Println("Infix Traversal:")
	fmt.Println(tree.SerializeInfix(" "))
	fmt.Println("Prefix Traversal:")
	fmt.Println(tree.SerializePrefix(" "))

	fmt.Printf("Shape (depth %d, %d single / %d double rotations):\n",
		tree.Height()+1, tree.SingleRotations(), tree.DoubleRotations())
	tree.Print(os.Stdout)
}
