// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng       = nil            (pure/deterministic unless seeded)
//   - featureFn = IndexFeatureFn (every entry equals the node ID)
//   - labelFn   = ParityLabelFn  (id % 2)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Attribute vector generator for new nodes.
	featureFn FeatureFn
	// Class label generator for new nodes.
	labelFn LabelFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		featureFn: IndexFeatureFn,
		labelFn:   ParityLabelFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
