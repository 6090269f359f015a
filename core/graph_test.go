package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphimpute/core"
)

// buildSample returns the four-node chain used across tests:
//
//	1:[1,#] - 2:[2,3] - 3:[3,4] - 4:[#,5]
func buildSample(t *testing.T) *core.Graph {
	t.Helper()
	nan := core.Missing()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, []float64{1, nan}, 0))
	require.NoError(t, g.AddNode(2, []float64{2, 3}, 1))
	require.NoError(t, g.AddNode(3, []float64{3, 4}, 0))
	require.NoError(t, g.AddNode(4, []float64{nan, 5}, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))
	return g
}

func TestGraph_Catalog(t *testing.T) {
	g := buildSample(t)

	assert.Equal(t, []int{1, 2, 3, 4}, g.Nodes())
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.Dim())
	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(0))
	assert.Equal(t, []int{1, 3}, g.Neighbors(2))
	assert.Equal(t, 2, g.MissingCount())
	assert.True(t, g.HasMissing(1))
	assert.False(t, g.HasMissing(2))
	assert.False(t, g.HasMissing(42))

	label, ok := g.Label(2)
	assert.True(t, ok)
	assert.Equal(t, 1, label)
	_, ok = g.Label(42)
	assert.False(t, ok)
}

func TestGraph_AddNodeErrors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, []float64{1, 2}, 0))
	require.ErrorIs(t, g.AddNode(0, []float64{1, 2}, 0), core.ErrDuplicateNode)
	require.ErrorIs(t, g.AddNode(1, []float64{1}, 0), core.ErrDimensionMismatch)
	require.ErrorIs(t, g.AddNode(-1, []float64{1, 2}, 0), core.ErrNegativeID)

	fixed := core.NewGraph(core.WithDimension(3))
	require.ErrorIs(t, fixed.AddNode(0, []float64{1, 2}, 0), core.ErrDimensionMismatch)
}

func TestGraph_FeaturesAreCopies(t *testing.T) {
	g := buildSample(t)

	f := g.Features(2)
	f[0] = 100
	assert.Equal(t, 2.0, g.Features(2)[0], "caller mutation must not leak into the graph")
	assert.Nil(t, g.Features(99))

	snap := g.FeatureSnapshot()
	snap[3][1] = -1
	assert.Equal(t, 4.0, g.Features(3)[1])
	assert.True(t, math.IsNaN(snap[1][1]))
}

func TestGraph_UpdateFeatures(t *testing.T) {
	g := buildSample(t)

	require.NoError(t, g.UpdateFeatures(1, []float64{1, 3.5}))
	assert.Equal(t, []float64{1, 3.5}, g.Features(1))
	assert.Equal(t, 1, g.MissingCount())

	require.ErrorIs(t, g.UpdateFeatures(9, []float64{0, 0}), core.ErrNodeNotFound)
	require.ErrorIs(t, g.UpdateFeatures(1, []float64{0}), core.ErrDimensionMismatch)
}

func TestGraph_FromPartsAndWeights(t *testing.T) {
	store, err := core.NewEdgeStore([]core.Edge{{0, 1}, {1, 2}, {2, 7}})
	require.NoError(t, err)

	g, err := core.FromParts([]core.Node{
		{ID: 0, Features: []float64{0}, Label: 0},
		{ID: 1, Features: []float64{1}, Label: 0},
		{ID: 2, Features: []float64{2}, Label: 1},
	}, store)
	require.NoError(t, err)

	// node 7 is referenced by an edge only
	assert.False(t, g.HasNode(7))
	assert.Equal(t, []int{1, 7}, g.Neighbors(2))
	assert.Nil(t, g.Features(7))

	assert.True(t, math.IsNaN(g.EdgeWeight(0, 1)))
	g.SetEdgeWeight(1, 0, 0.75)
	assert.Equal(t, 0.75, g.EdgeWeight(0, 1))
	assert.Same(t, store, g.Store())

	_, err = core.FromParts([]core.Node{{ID: 1, Features: []float64{1}}, {ID: 1, Features: []float64{1}}}, store)
	require.ErrorIs(t, err, core.ErrDuplicateNode)
}

func TestGraph_AverageDegree(t *testing.T) {
	g := buildSample(t)
	// degrees 1,2,2,1
	assert.InDelta(t, 1.5, g.AverageDegree(), 1e-12)
	assert.Zero(t, core.NewGraph().AverageDegree())
}

func TestMissingHelpers(t *testing.T) {
	assert.True(t, core.IsMissing(core.Missing()))
	assert.False(t, core.IsMissing(0))
	assert.Equal(t, 2, core.CountMissing([]float64{core.Missing(), 1, core.Missing()}))
	assert.Equal(t, core.Edge{From: 1, To: 5}, core.Edge{From: 5, To: 1}.Canonical())
}
