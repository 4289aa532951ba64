package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[T any] struct {
	opts DFSOptions[T] // traversal options
	res  *DFSResult[T] // result collector
}

// DFS performs a depth-first walk of the tree rooted at root, left subtree
// first, recording values in the order chosen by WithOrder.
// Returns DFSResult or an error if aborted by an option, context or hook.
func DFS[T any](root *core.Node[T], opts ...Option[T]) (*DFSResult[T], error) {
	// 1. Apply options
	dopts := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 2. Initialize result
	res := &DFSResult[T]{Order: make([]T, 0), Deepest: -1}
	if root == nil {
		return res, nil
	}

	// 3. Traverse
	w := &dfsWalker[T]{opts: dopts, res: res}
	if err := w.traverse(root, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits node n at the given depth and recurses into its children.
// It honors context cancellation, depth limit and hooks.
func (w *dfsWalker[T]) traverse(n *core.Node[T], depth int) error {
	// 1. Nothing to do for absent children or beyond the depth limit
	if n == nil || (w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth) {
		return nil
	}

	// 2. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 3. Bookkeeping
	w.res.Visited++
	w.res.Deepest = max(w.res.Deepest, depth)
	if n.IsLeaf() {
		w.res.Leaves++
	}

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n.Value, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook at depth %d: %w", depth, err)
		}
	}

	// 5. Record and recurse in the requested order
	if w.opts.Order == PreOrder {
		w.res.Order = append(w.res.Order, n.Value)
	}
	if err := w.traverse(n.Left, depth+1); err != nil {
		return err
	}
	if w.opts.Order == InOrder {
		w.res.Order = append(w.res.Order, n.Value)
	}
	if err := w.traverse(n.Right, depth+1); err != nil {
		return err
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n.Value, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook at depth %d: %w", depth, err)
		}
	}
	if w.opts.Order == PostOrder {
		w.res.Order = append(w.res.Order, n.Value)
	}

	return nil
}
