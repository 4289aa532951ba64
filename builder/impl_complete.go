// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_complete.go - Complete(n) and Perfect(depth) constructors.
//
// Contract:
//   - Complete: n ≥ 1 (else ErrTooFewNodes).
//   - Perfect:  1 ≤ depth ≤ maxPerfectDepth (ErrTooFewNodes / ErrBadSize).
//   - Heap layout: node i has children 2i+1 and 2i+2 when those are < n,
//     so a level-order walk yields indices 0..n-1 in order.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the index → node table.

package builder

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvtree/core"
)

// Complete returns a Constructor that builds the complete binary tree with
// n nodes in heap order.
func Complete(n int) Constructor {
	return func(_ builderConfig) (*core.Node[int], error) {
		if n < minNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minNodes, ErrTooFewNodes)
		}

		return heapTree(n), nil
	}
}

// Perfect returns a Constructor that builds a perfect binary tree of the
// given depth (2^depth-1 nodes, all leaves on the last level).
func Perfect(depth int) Constructor {
	return func(_ builderConfig) (*core.Node[int], error) {
		if depth < minNodes {
			return nil, fmt.Errorf("%s: depth=%d < min=%d: %w", methodPerfect, depth, minNodes, ErrTooFewNodes)
		}
		if depth > maxPerfectDepth {
			return nil, fmt.Errorf("%s: depth=%d > max=%d: %w", methodPerfect, depth, maxPerfectDepth, ErrBadSize)
		}

		return heapTree((1 << depth) - 1), nil
	}
}

// heapTree links n index nodes in heap order and returns node 0.
func heapTree(n int) *core.Node[int] {
	nodes := lo.Map(lo.Range(n), func(idx int, _ int) *core.Node[int] {
		return core.NewLeaf(idx)
	})
	for i, node := range nodes {
		if l := 2*i + 1; l < n {
			node.Left = nodes[l]
		}
		if r := 2*i + 2; r < n {
			node.Right = nodes[r]
		}
	}

	return nodes[0]
}
