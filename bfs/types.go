// Package bfs provides tunable options and error definitions
// for breadth‐first walks over a core.Node tree.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNodeNotReached is returned by PathTo for a node outside the walk.
	ErrNodeNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[T any] func(*BFSOptions[T])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[T any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node value and its depth (root = 0).
	OnEnqueue func(v T, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(v T, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterChild can prune a child (and its subtree) by returning false.
	FilterChild func(parent, child T) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all children allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[T any]() BFSOptions[T] {
	return BFSOptions[T]{
		Ctx:         context.Background(),
		OnEnqueue:   func(T, int) {},
		OnDequeue:   func(T, int) {},
		OnVisit:     func(T, int) error { return nil },
		MaxDepth:    0,
		FilterChild: func(_, _ T) bool { return true },
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *BFSOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T any](fn func(v T, depth int)) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[T any](fn func(v T, depth int)) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T any](fn func(v T, depth int) error) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: visit depths 0..d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *BFSOptions[T]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterChild skips a child and its whole subtree when fn returns false.
func WithFilterChild[T any](fn func(parent, child T) bool) Option[T] {
	return func(o *BFSOptions[T]) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}

// BFSResult holds the outcome of a BFS walk:
//   - Order:  values visited, in visit sequence.
//   - Levels: values grouped by depth.
//   - Parent: map from node to its parent in the tree.
type BFSResult[T any] struct {
	Order  []T
	Levels [][]T
	Parent map[*core.Node[T]]*core.Node[T]

	visited map[*core.Node[T]]struct{}
}

// PathTo returns the values from the root down to dest.
// Returns ErrNodeNotReached if dest was not visited.
func (r *BFSResult[T]) PathTo(dest *core.Node[T]) ([]T, error) {
	if _, ok := r.visited[dest]; !ok || dest == nil {
		return nil, ErrNodeNotReached
	}
	// build reversed path
	path := []T{}
	for cur := dest; ; {
		path = append(path, cur.Value)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
