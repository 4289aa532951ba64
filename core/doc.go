// Package core defines the generic binary tree node shared by every lvtree
// package, plus a handful of nil-safe structural helpers.
//
// A tree is a *Node[T]; the empty tree is a nil pointer. Children are
// owned exclusively by their parent: the structure is a finite, acyclic,
// rooted binary tree and no node is referenced by two parents.
//
//	    1
//	   / \
//	  2   3
//	 / \   \
//	4   5   6
//
// The tree above renders (String) as 1(2(4,5),3(_,6)). A leaf prints as
// its bare value, an absent child as "_".
//
// Helpers:
//
//	NewNode(v, l, r), NewLeaf(v)   // constructors
//	(*Node).IsLeaf()               // O(1), nil is not a leaf
//	Size, Height, Leaves           // O(n) walks, nil-safe
//	Clone, Map                     // shape-preserving copies
//	Validate                       // ErrCycle / ErrSharedNode detection
//
// Nothing in this package mutates a tree after construction; all helpers
// are safe to call concurrently on the same tree.
package core
