package builder

import "github.com/katalvlaran/lvtree/core"

// FromLevelOrder builds a tree from a level-order slot list where nil marks
// an absent node. Only present nodes consume child slots, so the sample tree
// 1(2(4,5),3(_,6)) is written as [1 2 3 4 5 nil 6]. Trailing slots beyond
// the last parent are ignored. An empty list or nil first slot yields nil.
//
// Complexity: O(len(slots)).
func FromLevelOrder[T any](slots []*T) *core.Node[T] {
	if len(slots) == 0 || slots[0] == nil {
		return nil
	}

	root := core.NewLeaf(*slots[0])
	queue := []*core.Node[T]{root}
	next := 1
	for len(queue) > 0 && next < len(slots) {
		parent := queue[0]
		queue = queue[1:]

		if v := slots[next]; v != nil {
			parent.Left = core.NewLeaf(*v)
			queue = append(queue, parent.Left)
		}
		next++
		if next >= len(slots) {
			break
		}
		if v := slots[next]; v != nil {
			parent.Right = core.NewLeaf(*v)
			queue = append(queue, parent.Right)
		}
		next++
	}

	return root
}

// Slot returns a pointer to v, for writing FromLevelOrder literals:
//
//	builder.FromLevelOrder([]*int{builder.Slot(1), nil, builder.Slot(2)})
func Slot[T any](v T) *T {
	return &v
}
