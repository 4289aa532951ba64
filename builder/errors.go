// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); never match strings.
//   • Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes).
//   • Algorithms never panic; validation panics are confined to WithX option constructors.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, depth) is below the
// minimum accepted by the constructor.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrBadSize indicates a size that is syntactically valid but too large to
// materialize (e.g. Perfect(depth) beyond maxPerfectDepth).
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSide indicates an unsupported Side value passed to Path.
var ErrUnknownSide = errors.New("builder: unknown side")

// ErrSyntax indicates malformed compact tree notation passed to Parse.
var ErrSyntax = errors.New("builder: syntax error")

// ErrConstructFailed indicates that BuildTree could not produce a valid
// tree: nil constructor or value function, or a shape rejected by core.Validate.
var ErrConstructFailed = errors.New("builder: construction failed")
