// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(dim, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order give identical graphs.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphimpute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters early, return sentinel
// errors and add nodes through addNodes so attribute policies apply.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph whose nodes carry dim attributes, resolves the
// builder configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildGraph(dim int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if dim < 1 {
		return nil, fmt.Errorf("BuildGraph: dim=%d: %w", dim, ErrInvalidDimension)
	}
	g := core.NewGraph(core.WithDimension(dim))
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
