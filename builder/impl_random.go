// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_random.go - implementation of Random(n) constructor.
//
// Model:
//   - Start from root 0. Keep the list of free child slots. Node i (i=1..n-1)
//     takes a uniformly chosen free slot, which is then replaced by its own
//     two slots. Every binary tree shape with n nodes is reachable.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for n = 1.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the free-slot list.
//
// Determinism:
//   - Fixed draw order (one Intn per attached node) ⇒ identical shape per seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// slot is a free child position of an already attached node.
type slot struct {
	parent *core.Node[int]
	left   bool
}

// Random returns a Constructor that grows a random tree of n nodes.
func Random(n int) Constructor {
	return func(cfg builderConfig) (*core.Node[int], error) {
		if n < minNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minNodes, ErrTooFewNodes)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		root := core.NewLeaf(0)
		free := make([]slot, 0, n+1)
		free = append(free, slot{root, true}, slot{root, false})
		for i := 1; i < n; i++ {
			k := cfg.rng.Intn(len(free))
			s := free[k]
			// swap-delete keeps the draw O(1)
			free[k] = free[len(free)-1]
			free = free[:len(free)-1]

			node := core.NewLeaf(i)
			if s.left {
				s.parent.Left = node
			} else {
				s.parent.Right = node
			}
			free = append(free, slot{node, true}, slot{node, false})
		}

		return root, nil
	}
}
