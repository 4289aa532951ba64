// Package bfs provides a configurable breadth-first walk over a core.Node tree,
// returning the visit order, the values grouped by level and parent links.
//
// What
//
//   - Visit nodes in non-decreasing depth from the root, left before right
//     within a level.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence of values
//   - Levels: values grouped by depth (Levels[0] holds the root)
//   - Parent: map from node → its parent (the root has no entry)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Prunes whole subtrees with WithFilterChild.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Children are always enqueued left then right, so the visit sequence is
//	fully reproducible and matches traversal.CollectLevelOrderValues when no
//	option restricts the walk.
//
// Complexity (n = nodes, w = widest level)
//
//   - Time:   O(n)
//   - Memory: O(w) queue plus O(n) for Order, Levels and Parent.
//
// Usage
//
//	res, err := bfs.BFS(root,
//	    bfs.WithContext[int](ctx),
//	    bfs.WithMaxDepth[int](3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrOptionViolation  invalid option (e.g. negative MaxDepth)
//   - ErrNodeNotReached   PathTo called for a node the walk did not visit
//   - context errors      ctx canceled or deadline exceeded
//   - hook errors         wrapped from OnVisit
//
// A nil root is a valid empty tree: the result is empty and the error nil.
package bfs
