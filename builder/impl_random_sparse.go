// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i<j}
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic without one.
//
// Determinism:
//   - Stable trial order: i asc, then j asc with j > i. Features are drawn
//     for all nodes before any edge trial.

package builder

import "github.com/katalvlaran/graphimpute/core"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return wrapNeedRand(methodRandomSparse)
		}

		base, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == 0:
				case p == 1:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
