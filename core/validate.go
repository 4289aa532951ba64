package core

import "fmt"

// Validate checks that root describes a proper tree: no node is its own
// ancestor and no node is reachable from two parents. A nil root is valid.
//
// Returns ErrCycle or ErrSharedNode wrapped with the offending value.
// Complexity: O(n) time, O(n) memory for the seen/ancestor sets.
func Validate[T any](root *Node[T]) error {
	v := &validator[T]{
		seen:   make(map[*Node[T]]struct{}),
		onPath: make(map[*Node[T]]struct{}),
	}

	return v.walk(root)
}

// validator tracks every node seen so far and the nodes on the current path.
type validator[T any] struct {
	seen   map[*Node[T]]struct{}
	onPath map[*Node[T]]struct{}
}

func (v *validator[T]) walk(n *Node[T]) error {
	if n == nil {
		return nil
	}
	if _, ok := v.onPath[n]; ok {
		return fmt.Errorf("%w: at value %v", ErrCycle, n.Value)
	}
	if _, ok := v.seen[n]; ok {
		return fmt.Errorf("%w: at value %v", ErrSharedNode, n.Value)
	}
	v.seen[n] = struct{}{}
	v.onPath[n] = struct{}{}
	if err := v.walk(n.Left); err != nil {
		return err
	}
	if err := v.walk(n.Right); err != nil {
		return err
	}
	delete(v.onPath, n)

	return nil
}
