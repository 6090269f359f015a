// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// helpers.go - shared node/edge insertion and validation used by the impl_*.go
// constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphimpute/core"
)

// nextID returns the first ID after the highest node already in g.
// Constructors use it as their base so composed fixtures stay disjoint.
func nextID(g *core.Graph) int {
	next := 0
	for _, id := range g.Nodes() {
		next = max(next, id+1)
	}
	return next
}

// addNodes inserts n nodes with IDs base..base+n-1 using the configured
// attribute and label policies, and returns base.
//
// Complexity: O(n*dim) time.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) (int, error) {
	base := nextID(g)
	dim := g.Dim()
	for i := 0; i < n; i++ {
		id := base + i
		features := cfg.featureFn(id, dim, cfg.rng)
		if len(features) != dim {
			return 0, fmt.Errorf("%s: FeatureFn(%d) returned %d values, want %d: %w",
				method, id, len(features), dim, ErrInvalidDimension)
		}
		if err := g.AddNode(id, features, cfg.labelFn(id)); err != nil {
			return 0, fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
		}
	}
	return base, nil
}

// addEdge inserts the undirected edge a-b with method context.
func addEdge(g *core.Graph, method string, a, b int) error {
	if err := g.AddEdge(a, b); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d): %w", method, a, b, err)
	}
	return nil
}

// validateMin ensures v ≥ min for the named parameter.
func validateMin(method, name string, v, min int) error {
	if v < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability ensures p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	return nil
}

// wrapNeedRand reports a missing RNG for method.
func wrapNeedRand(method string) error {
	return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
}
