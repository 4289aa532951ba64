// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
