// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders and feature
// generators. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFeatureFn overrides the attribute generator. Panics on nil.
func WithFeatureFn(fn FeatureFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFeatureFn(nil)")
	}
	return func(c *builderConfig) {
		c.featureFn = fn
	}
}

// WithLabelFn overrides the label generator. Panics on nil.
func WithLabelFn(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithUniformFeatures draws attributes from U[min,max).
func WithUniformFeatures(min, max float64) BuilderOption {
	return WithFeatureFn(UniformFeatureFn(min, max))
}

// WithNormalFeatures draws attributes from N(mean, stddev).
func WithNormalFeatures(mean, stddev float64) BuilderOption {
	return WithFeatureFn(NormalFeatureFn(mean, stddev))
}
