// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Node (r,c) has ID base + r*cols + c (row-major).
//   - 4-neighborhood: right then down neighbor, in row-major order.
//
// Complexity: O(R*C) nodes + O(2RC - R - C) edges.

package builder

import "github.com/katalvlaran/graphimpute/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		base, err := addNodes(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					if err := addEdge(g, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
