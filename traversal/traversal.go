package traversal

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvtree/core"
)

// Number is the set of value types SumLeafNodes can add up.
type Number interface {
	constraints.Integer | constraints.Float
}

// SumLeafNodes returns the sum of the values of all leaves under node.
// An absent tree sums to 0. Integer overflow wraps as usual in Go.
func SumLeafNodes[T Number](node *core.Node[T]) T {
	if node == nil {
		return 0
	}
	if node.IsLeaf() {
		return node.Value
	}

	return SumLeafNodes(node.Left) + SumLeafNodes(node.Right)
}

// CountInternalNodes returns how many nodes under node have at least one child.
func CountInternalNodes[T any](node *core.Node[T]) int {
	if node == nil || node.IsLeaf() {
		return 0
	}

	return 1 + CountInternalNodes(node.Left) + CountInternalNodes(node.Right)
}

// BuildPostOrderString concatenates fmt.Sprint of every value in post-order
// (left subtree, right subtree, node). For 1(2(4,5),3(_,6)) it yields "452631".
// An absent tree yields "".
func BuildPostOrderString[T any](node *core.Node[T]) string {
	return BuildPostOrderStringFunc(node, func(v T) string { return fmt.Sprint(v) })
}

// BuildPostOrderStringFunc is BuildPostOrderString with an explicit
// stringify function. A nil fn falls back to fmt.Sprint.
func BuildPostOrderStringFunc[T any](node *core.Node[T], fn func(T) string) string {
	if fn == nil {
		fn = func(v T) string { return fmt.Sprint(v) }
	}
	if node == nil {
		return ""
	}

	return BuildPostOrderStringFunc(node.Left, fn) + BuildPostOrderStringFunc(node.Right, fn) + fn(node.Value)
}

// CollectLevelOrderValues returns the values of the tree level by level,
// top to bottom and left to right within a level. The result is never nil.
func CollectLevelOrderValues[T any](node *core.Node[T]) []T {
	out := make([]T, 0)

	// the queue is seeded with the root even when it is nil;
	// absent entries are skipped on dequeue
	queue := []*core.Node[T]{node}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == nil {
			continue
		}
		out = append(out, cur.Value)
		queue = append(queue, cur.Left, cur.Right)
	}

	return out
}

// CountDistinctValues returns the number of distinct values stored under node.
func CountDistinctValues[T comparable](node *core.Node[T]) int {
	set := make(map[T]struct{})

	stack := []*core.Node[T]{node}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		set[cur.Value] = struct{}{}
		stack = append(stack, cur.Left, cur.Right)
	}

	return len(set)
}

// HasStrictlyIncreasingPath reports whether at least one root-to-leaf path
// has strictly increasing values from root to leaf. A lone leaf counts as
// an increasing path of length one; an absent tree has no path.
func HasStrictlyIncreasingPath[T constraints.Ordered](node *core.Node[T]) bool {
	if node == nil {
		return false
	}
	if node.IsLeaf() {
		return true
	}

	return increasingFrom(node.Left, node.Value) || increasingFrom(node.Right, node.Value)
}

// increasingFrom reports whether node starts an increasing path to a leaf
// whose first value is strictly greater than prev.
func increasingFrom[T constraints.Ordered](node *core.Node[T], prev T) bool {
	if node == nil || node.Value <= prev {
		return false
	}
	if node.IsLeaf() {
		return true
	}

	return increasingFrom(node.Left, node.Value) || increasingFrom(node.Right, node.Value)
}

// HaveSameShape reports whether a and b have the same arrangement of
// present and absent children at every position. Values are ignored, so
// the two trees may hold different value types.
func HaveSameShape[A, B any](a *core.Node[A], b *core.Node[B]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return HaveSameShape(a.Left, b.Left) && HaveSameShape(a.Right, b.Right)
}

// FindAllRootToLeafPaths returns every root-to-leaf path as the list of
// values from root to leaf, left subtree paths before right subtree paths.
// An absent tree yields an empty, non-nil slice.
//
// Example: 1(2(4,5),3(_,6)) yields [[1 2 4] [1 2 5] [1 3 6]].
func FindAllRootToLeafPaths[T any](node *core.Node[T]) [][]T {
	c := &pathCollector[T]{paths: make([][]T, 0)}
	c.descend(node)

	return c.paths
}

// pathCollector holds the current path stack and the finished paths.
type pathCollector[T any] struct {
	current []T
	paths   [][]T
}

// descend pushes node's value, records a copy at a leaf, recurses into
// both children and pops the value before returning.
func (c *pathCollector[T]) descend(node *core.Node[T]) {
	if node == nil {
		return
	}
	c.current = append(c.current, node.Value)
	if node.IsLeaf() {
		path := make([]T, len(c.current))
		copy(path, c.current)
		c.paths = append(c.paths, path)
	} else {
		c.descend(node.Left)
		c.descend(node.Right)
	}
	c.current = c.current[:len(c.current)-1]
}
