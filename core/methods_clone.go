// File: methods_clone.go
// Role: Shape-preserving copies of a tree.
// Determinism:
//   - Clone and Map visit nodes in pre-order; fn sees values in that order.

package core

// Clone returns a deep copy of the tree rooted at root.
// Values are copied by assignment, so pointer-like payloads are shared.
//
// Complexity: O(n) time and allocations.
func Clone[T any](root *Node[T]) *Node[T] {
	return Map(root, func(v T) T { return v })
}

// Map returns a new tree with the same shape as root whose values are
// fn applied to the corresponding input values. The input is not modified.
//
// Complexity: O(n) time and allocations.
func Map[T, U any](root *Node[T], fn func(T) U) *Node[U] {
	if root == nil {
		return nil
	}
	out := &Node[U]{Value: fn(root.Value)}
	out.Left = Map(root.Left, fn)
	out.Right = Map(root.Right, fn)

	return out
}
