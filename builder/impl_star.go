// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The center is the first node (base); leaves are base+1..base+n-1.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import "github.com/katalvlaran/graphimpute/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		center, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, center, center+i); err != nil {
				return err
			}
		}
		return nil
	}
}
