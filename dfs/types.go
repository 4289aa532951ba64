// Package dfs defines types and options for depth-first walks,
// including cancellation, pre-/post-order hooks, depth limiting and
// the recording order.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Order selects when DFS appends a node value to DFSResult.Order.
type Order int

const (
	PreOrder  Order = iota // PreOrder: node, left, right.
	InOrder                // InOrder: left, node, right.
	PostOrder              // PostOrder: left, right, node.
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Option configures optional behavior of DFS traversal.
// Use with DFS(root, opts...).
type Option[T any] func(*DFSOptions[T])

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(n) when hooks are O(1).
type DFSOptions[T any] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// Order selects pre-, in- or post-order recording. Default PreOrder.
	Order Order

	// OnVisit, if non-nil, is invoked immediately upon entering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v T, depth int) error

	// OnExit, if non-nil, is invoked after both subtrees of a node
	// have been explored (post-order).
	// Returning an error aborts traversal and leaves Order empty.
	OnExit func(v T, depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - PreOrder recording
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
func DefaultOptions[T any]() DFSOptions[T] {
	return DFSOptions[T]{
		Ctx:      context.Background(),
		Order:    PreOrder,
		OnVisit:  nil,
		OnExit:   nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *DFSOptions[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder returns an Option that selects the recording order.
// Unknown values surface as ErrOptionViolation.
func WithOrder[T any](order Order) Option[T] {
	return func(o *DFSOptions[T]) {
		if order < PreOrder || order > PostOrder {
			o.err = fmt.Errorf("%w: unknown order %v", ErrOptionViolation, order)
			return
		}
		o.Order = order
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[T any](fn func(v T, depth int) error) Option[T] {
	return func(o *DFSOptions[T]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a node’s subtrees have been fully explored.
func WithOnExit[T any](fn func(v T, depth int) error) Option[T] {
	return func(o *DFSOptions[T]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root is visited, -1 removes the limit.
// Values below -1 surface as ErrOptionViolation.
func WithMaxDepth[T any](limit int) Option[T] {
	return func(o *DFSOptions[T]) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be below -1 (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult[T any] struct {
	// Order records values in the requested order.
	Order []T

	// Deepest is the greatest depth reached (root = 0); -1 for an empty tree.
	Deepest int

	// Leaves counts visited nodes that are leaves of the tree.
	Leaves int

	// Visited counts every node entered.
	Visited int
}
