// Package avl implements a self-balancing binary search tree holding
// an ordered set of distinct elements, with insertion, deletion,
// membership test, min/max lookup and ordered serialization.
//
// Every node carries a cached subtree height and the tree keeps the
// AVL property, |height(left) - height(right)| <= 1, at every node
// after every operation, so all single-element operations run in
// O(log n).
//
// Note: an individual tree is not safe for concurrent use, so either
// access it from a single goroutine or guard it with a mutex.
//
// The base algorithm follows Weiss, Data Structures and Algorithm
// Analysis.
package avl
