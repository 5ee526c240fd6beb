// SPDX-License-Identifier: MIT
// Package: landmarks/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng    = nil   (pure/deterministic unless seeded)
//   • offset = 0     (first constructed node is label 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Label shift: node k of a constructor lands on label offset+k+1.
	offset int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		offset: 0,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// label maps constructor-local node k (0-based) to its 1-based landmark label.
func (c builderConfig) label(k int) int {
	return c.offset + k + 1
}
