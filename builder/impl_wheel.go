// SPDX-License-Identifier: MIT
// Package: graphimpute/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - W_n = C_{n-1} + center; the center is base, the rim base+1..base+n-1.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import "github.com/katalvlaran/graphimpute/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		center, err := addNodes(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := center+1+i, center+1+(i+1)%rim
			if err := addEdge(g, methodWheel, u, v); err != nil {
				return err
			}
			if err := addEdge(g, methodWheel, center, u); err != nil {
				return err
			}
		}
		return nil
	}
}
