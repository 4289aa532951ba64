package core

import (
	"fmt"
	"strings"
)

// absentMark is how String renders a missing child.
const absentMark = "_"

// IsLeaf reports whether n is present and has no children.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Size returns the number of nodes in the tree rooted at root.
// Complexity: O(n) time, O(h) stack.
func Size[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}

	return 1 + Size(root.Left) + Size(root.Right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// The empty tree has height 0 and a single leaf has height 1.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}

	return 1 + max(Height(root.Left), Height(root.Right))
}

// Leaves returns the number of leaves in the tree rooted at root.
func Leaves[T any](root *Node[T]) int {
	switch {
	case root == nil:
		return 0
	case root.IsLeaf():
		return 1
	default:
		return Leaves(root.Left) + Leaves(root.Right)
	}
}

// String renders the subtree in compact notation, e.g. "1(2(4,5),3(_,6))".
// Values are formatted with fmt.Sprint. A nil receiver renders as "_".
func (n *Node[T]) String() string {
	var sb strings.Builder
	n.render(&sb)

	return sb.String()
}

// render writes n into sb in pre-order.
func (n *Node[T]) render(sb *strings.Builder) {
	if n == nil {
		sb.WriteString(absentMark)
		return
	}
	sb.WriteString(fmt.Sprint(n.Value))
	if n.IsLeaf() {
		return
	}
	sb.WriteByte('(')
	n.Left.render(sb)
	sb.WriteByte(',')
	n.Right.render(sb)
	sb.WriteByte(')')
}
