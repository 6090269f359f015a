// SPDX-License-Identifier: MIT
// File: walk.go
// Role: Weighted random walks driven by per-node alias tables.
// Determinism:
//   - Tables are indexed like the node's sorted neighbor list.
//   - Given the same *rand.Rand state, Walk and Walks are reproducible.

// Package walk generates weighted random walks over a core.Graph.
//
// One alias table per node is built from the current edge weights (an unset
// weight counts as 1), so every step costs O(1) regardless of degree.
package walk

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphimpute/alias"
	"github.com/katalvlaran/graphimpute/core"
)

// Generator draws walks over a fixed snapshot of the graph's edge weights.
type Generator struct {
	g      *core.Graph
	tables []*alias.Table
	nbrs   [][]int
}

// New builds alias tables for every ID the edge store spans.
// Errors from alias.New (negative or non-finite weights) are wrapped.
func New(g *core.Graph) (*Generator, error) {
	gen := &Generator{g: g}
	if err := gen.Rebuild(); err != nil {
		return nil, err
	}
	return gen, nil
}

// Rebuild re-derives every alias table from the current edge weights.
// Complexity: O(V + E).
func (gen *Generator) Rebuild() error {
	span := gen.g.Store().Span()
	gen.tables = make([]*alias.Table, span)
	gen.nbrs = make([][]int, span)

	for id := 0; id < span; id++ {
		nbrs := gen.g.Neighbors(id)
		if len(nbrs) == 0 {
			continue
		}
		weights := make([]float64, len(nbrs))
		for i, nb := range nbrs {
			w := gen.g.EdgeWeight(id, nb)
			if math.IsNaN(w) {
				w = 1
			}
			weights[i] = w
		}
		tab, err := alias.New(weights)
		if err != nil {
			return fmt.Errorf("walk: node %d: %w", id, err)
		}
		gen.tables[id] = tab
		gen.nbrs[id] = nbrs
	}

	return nil
}

// Walk returns a walk of at most length nodes beginning at start. It ends
// early at a node without neighbors. length < 1 yields an empty walk.
func (gen *Generator) Walk(start, length int, rng *rand.Rand) []int {
	if length < 1 {
		return nil
	}
	out := make([]int, 1, length)
	out[0] = start

	cur := start
	for len(out) < length {
		if cur < 0 || cur >= len(gen.tables) || gen.tables[cur] == nil {
			break
		}
		cur = gen.nbrs[cur][gen.tables[cur].Draw(rng)]
		out = append(out, cur)
	}

	return out
}

// Walks performs walksPerNode passes; each pass shuffles the node IDs and
// starts one walk from every node.
func (gen *Generator) Walks(walksPerNode, length int, rng *rand.Rand) [][]int {
	if walksPerNode < 1 || length < 1 {
		return nil
	}
	order := gen.g.Nodes()
	out := make([][]int, 0, walksPerNode*len(order))
	for pass := 0; pass < walksPerNode; pass++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, id := range order {
			out = append(out, gen.Walk(id, length, rng))
		}
	}

	return out
}
