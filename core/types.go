package core

import "errors"

// Sentinel errors reported by Validate.
var (
	// ErrCycle indicates that a node is its own ancestor.
	ErrCycle = errors.New("core: cycle detected")

	// ErrSharedNode indicates that a node is referenced by two parents.
	ErrSharedNode = errors.New("core: node has more than one parent")
)

// Node is a binary tree node carrying a Value of type T.
//
// Left and Right are optional and exclusively owned by this node.
type Node[T any] struct {
	// Value is the payload stored at this position.
	Value T

	// Left is the root of the left subtree, nil when absent.
	Left *Node[T]

	// Right is the root of the right subtree, nil when absent.
	Right *Node[T]
}

// NewNode returns a node holding v with the given children.
func NewNode[T any](v T, left, right *Node[T]) *Node[T] {
	return &Node[T]{Value: v, Left: left, Right: right}
}

// NewLeaf returns a childless node holding v.
func NewLeaf[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}
