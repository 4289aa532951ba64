// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_path.go - implementation of Path(n, side) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); side ∈ {SideLeft, SideRight, SideZigzag}
//     (else ErrUnknownSide).
//   - Node i+1 is a child of node i; the root is index 0, the only leaf n-1.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Path returns a Constructor that builds a degenerate tree: a single chain
// of n nodes hanging on the given side.
func Path(n int, side Side) Constructor {
	return func(_ builderConfig) (*core.Node[int], error) {
		if n < minNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minNodes, ErrTooFewNodes)
		}
		if side < SideLeft || side > SideZigzag {
			return nil, fmt.Errorf("%s: side=%d: %w", methodPath, int(side), ErrUnknownSide)
		}

		root := core.NewLeaf(0)
		cur := root
		for i := 1; i < n; i++ {
			next := core.NewLeaf(i)
			if hangLeft(side, i-1) {
				cur.Left = next
			} else {
				cur.Right = next
			}
			cur = next
		}

		return root, nil
	}
}

// hangLeft reports whether the child of node parentIdx goes to the left.
func hangLeft(side Side, parentIdx int) bool {
	switch side {
	case SideLeft:
		return true
	case SideRight:
		return false
	default:
		return parentIdx%2 == 0
	}
}
