// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// api.go - public entry-point for shape constructors.
//
// Design contract:
//   - One orchestrator: BuildTree(valueFn, con, opts...). Resolves cfg, runs con,
//     validates the shape, maps indices to values.
//   - Constructors produce *core.Node[int] whose values are node indices
//     0..n-1; the index order is documented per constructor.
//   - Safety: never panic; return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Constructor builds a tree shape from the resolved builderConfig. Each node
// holds its index; BuildTree later turns indices into values. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Assign indices 0..n-1 exactly once.
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (*core.Node[int], error)

// BuildTree resolves bopts, runs con and converts every index to a value
// with valueFn. The shape is checked with core.Validate before mapping.
//
// Errors:
//   - ErrConstructFailed for a nil valueFn or con, or an invalid shape.
//   - Any constructor error, wrapped as "BuildTree: %w".
//
// Complexity: O(n) on top of the constructor's own cost.
func BuildTree[T any](valueFn ValueFn[T], con Constructor, bopts ...BuilderOption) (*core.Node[T], error) {
	if valueFn == nil {
		return nil, fmt.Errorf("%s: nil value function: %w", methodBuildTree, ErrConstructFailed)
	}
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuildTree, ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	shape, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildTree, err)
	}
	if err = core.Validate(shape); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuildTree, ErrConstructFailed, err)
	}

	return core.Map(shape, func(idx int) T { return valueFn(idx) }), nil
}

// Ints is shorthand for BuildTree(IndexValue, con, bopts...).
func Ints(con Constructor, bopts ...BuilderOption) (*core.Node[int], error) {
	return BuildTree(IndexValue, con, bopts...)
}
