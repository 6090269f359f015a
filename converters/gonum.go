// SPDX-License-Identifier: MIT
// File: gonum.go
// Role: Export of core.Graph to gonum and component analysis.

package converters

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/graphimpute/core"
)

// DefaultWeight is exported for edges whose weight is unset.
const DefaultWeight = 1.0

// ToGonum copies g into a new weighted undirected gonum graph. Node IDs are
// kept; nodes referenced only by edges are created too. Unset weights become
// DefaultWeight. A nil g yields an empty graph.
func ToGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, 0)
	if g == nil {
		return out
	}
	for _, id := range g.Nodes() {
		out.AddNode(simple.Node(int64(id)))
	}
	for _, e := range g.Edges() {
		w := g.EdgeWeight(e.From, e.To)
		if core.IsMissing(w) {
			w = DefaultWeight
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(int64(e.From)), simple.Node(int64(e.To)), w))
	}
	return out
}

// Components returns the connected components of g. Each component is
// sorted ascending and components are ordered by their smallest ID.
// Isolated nodes form singleton components.
func Components(g *core.Graph) [][]int {
	cc := topo.ConnectedComponents(ToGonum(g))
	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []int) int { return a[0] - b[0] })
	return out
}
