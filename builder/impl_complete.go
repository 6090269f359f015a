// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// impl_complete.go - implementation of Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   - Complete: n ≥ 1; every unordered pair {i<j} is connected.
//   - CompleteBipartite: n1, n2 ≥ 1; left side base..base+n1-1, right side
//     follows; every left-right pair is connected.
//
// Complexity: O(n²) and O(n1*n2) edges respectively.

package builder

import "github.com/katalvlaran/graphimpute/core"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		base, err := addNodes(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "n1", n1, minPartitionSize); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, minPartitionSize); err != nil {
			return err
		}
		base, err := addNodes(g, cfg, methodCompleteBipartite, n1+n2)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, methodCompleteBipartite, base+i, base+n1+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
