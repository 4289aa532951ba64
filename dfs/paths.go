package dfs

import (
	"iter"

	"github.com/katalvlaran/lvtree/core"
)

// RootToLeafPaths returns a sequence over every root-to-leaf path of the
// tree, left subtree paths first. A nil root yields nothing.
//
// The yielded slice is reused between steps; clone it (slices.Clone) if
// you need it after the next iteration.
func RootToLeafPaths[T any](root *core.Node[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if root == nil {
			return
		}
		pathsRecurse(root, make([]T, 0, 8), yield)
	}
}

// Returns true if done (some yield has returned false).
func pathsRecurse[T any](n *core.Node[T], path []T, yield func([]T) bool) bool {
	path = append(path, n.Value)
	if n.IsLeaf() {
		return !yield(path)
	}
	for _, child := range [2]*core.Node[T]{n.Left, n.Right} {
		if child != nil && pathsRecurse(child, path, yield) {
			return true
		}
	}

	return false
}
