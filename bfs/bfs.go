package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// queueItem pairs a node with its depth.
type queueItem[T any] struct {
	node  *core.Node[T]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	opts  BFSOptions[T]
	queue []queueItem[T]
	res   *BFSResult[T]
}

// BFS walks the tree rooted at root breadth-first, applying any number of
// functional Options. A nil root yields an empty result.
// Returns ErrOptionViolation for bad options, the context error on
// cancellation, or any OnVisit error (wrapped).
func BFS[T any](root *core.Node[T], opts ...Option[T]) (*BFSResult[T], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		opts: o,
		res: &BFSResult[T]{
			Order:   make([]T, 0),
			Levels:  make([][]T, 0),
			Parent:  make(map[*core.Node[T]]*core.Node[T]),
			visited: make(map[*core.Node[T]]struct{}),
		},
	}
	if root == nil {
		return w.res, nil
	}

	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// enqueue records the parent link, calls OnEnqueue and appends to the queue.
func (w *walker[T]) enqueue(n *core.Node[T], d int, parent *core.Node[T]) {
	if parent != nil {
		w.res.Parent[n] = parent
	}
	w.opts.OnEnqueue(n.Value, d)
	w.queue = append(w.queue, queueItem[T]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[T]) dequeue() queueItem[T] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node.Value, item.depth)

	return item
}

// visit records the value in Order and Levels, then calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	w.res.visited[item.node] = struct{}{}
	w.res.Order = append(w.res.Order, item.node.Value)
	if item.depth == len(w.res.Levels) {
		w.res.Levels = append(w.res.Levels, nil)
	}
	w.res.Levels[item.depth] = append(w.res.Levels[item.depth], item.node.Value)
	if err := w.opts.OnVisit(item.node.Value, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
	}

	return nil
}

// enqueueChildren enqueues the present children of item, left first,
// honoring FilterChild and MaxDepth.
func (w *walker[T]) enqueueChildren(item queueItem[T]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, child := range [2]*core.Node[T]{item.node.Left, item.node.Right} {
		if child == nil || !w.opts.FilterChild(item.node.Value, child.Value) {
			continue
		}
		w.enqueue(child, nextDepth, item.node)
	}
}
