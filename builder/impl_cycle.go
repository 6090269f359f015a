// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Nodes base..base+n-1; edges i-(i+1)%n in ascending i.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import "github.com/katalvlaran/graphimpute/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		base, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		// for i==n-1 the ring closes back to base
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
