// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes base..base+n-1; edges i-(i+1) in ascending i.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import "github.com/katalvlaran/graphimpute/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		base, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}
		return nil
	}
}
