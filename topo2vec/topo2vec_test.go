package topo2vec_test

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/graphimpute/builder"
	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/impute"
	"github.com/katalvlaran/graphimpute/topo2vec"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// barbell is two triangles 0-1-2 and 3-4-5 joined by 2-3.
// Node 0 misses its only attribute.
func barbell(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	vals := []float64{math.NaN(), 2, 4, 6, 8, 10}
	for id, v := range vals {
		require.NoError(t, g.AddNode(id, []float64{v}, id/3))
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 5}, {5, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func small() impute.Params {
	return impute.Params{"embeddingDimensions": 8, "numEpochs": 3, "windowSize": 2, "seed": 7}
}

func TestRun_EmbeddingShape(t *testing.T) {
	g := barbell(t)
	s := topo2vec.New(g, impute.WithLogger(quiet), impute.WithParams(small()))
	require.NoError(t, s.Run())

	emb := s.Embeddings()
	require.Len(t, emb, g.NodeCount())
	for id, v := range emb {
		require.Len(t, v, 8, "node %d", id)
		assert.InDelta(t, 1, floats.Norm(v, 2), 1e-9, "node %d is not unit length", id)
	}

	subs := s.Subgraphs()
	require.Len(t, subs, g.NodeCount())
	for i, id := range g.Nodes() {
		assert.Equal(t, id, subs[i][0])
	}
}

func TestRun_FillsFromAllOthersWhenKCoversGraph(t *testing.T) {
	g := barbell(t)
	p := small()
	p["k"] = 5
	s := topo2vec.New(g, impute.WithLogger(quiet), impute.WithParams(p))
	require.NoError(t, s.Run())

	// with k spanning every other node the estimate is their mean
	assert.InDelta(t, 6.0, g.Features(0)[0], 1e-12)
	assert.Zero(t, g.MissingCount())
	assert.Equal(t, 1, s.Stats().Filled)
}

func TestRun_FillsWithDefaultK(t *testing.T) {
	g := barbell(t)
	s := topo2vec.New(g, impute.WithLogger(quiet), impute.WithParams(small()))
	require.NoError(t, s.Run())

	v := g.Features(0)[0]
	assert.False(t, math.IsNaN(v))
	assert.GreaterOrEqual(t, v, 2.0)
	assert.LessOrEqual(t, v, 10.0)
}

func TestRun_Deterministic(t *testing.T) {
	a := topo2vec.New(barbell(t), impute.WithLogger(quiet), impute.WithParams(small()))
	b := topo2vec.New(barbell(t), impute.WithLogger(quiet), impute.WithParams(small()))
	require.NoError(t, a.Run())
	require.NoError(t, b.Run())
	assert.Equal(t, a.Embeddings(), b.Embeddings())
	assert.Equal(t, a.ExtractResults().Features(0), b.ExtractResults().Features(0))
}

func TestRun_MaskedRandomGraph(t *testing.T) {
	g, err := builder.BuildGraph(2,
		[]builder.BuilderOption{builder.WithSeed(31), builder.WithNormalFeatures(5, 2)},
		builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	masked, err := builder.MaskMCAR(g, 0.2, rand.New(rand.NewSource(32)))
	require.NoError(t, err)
	require.Positive(t, masked)
	observed := g.FeatureSnapshot()

	s := topo2vec.New(g, impute.WithLogger(quiet), impute.WithParams(small()))
	require.NoError(t, s.Run())

	st := s.Stats()
	assert.Equal(t, masked, st.Filled+st.Remaining)
	assert.Equal(t, st.Remaining, g.MissingCount())
	assert.Positive(t, st.Filled)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, feats := range observed {
		for _, v := range feats {
			if !math.IsNaN(v) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	for id, before := range observed {
		for d, v := range g.Features(id) {
			if math.IsNaN(before[d]) && !math.IsNaN(v) {
				assert.GreaterOrEqual(t, v, lo, "node %d", id)
				assert.LessOrEqual(t, v, hi, "node %d", id)
			}
		}
	}

	// every subgraph starts at its root and only holds graph nodes
	for i, id := range g.Nodes() {
		sub := s.Subgraphs()[i]
		assert.Equal(t, id, sub[0])
		for _, v := range sub {
			assert.True(t, g.HasNode(v))
		}
	}
}

func TestRun_OptionsAndReset(t *testing.T) {
	g := barbell(t)
	p := small()
	p["maxSubgraphSize"] = 2
	p["tau"] = 0.1
	s := topo2vec.New(g, impute.WithLogger(quiet), impute.WithParams(p))
	require.NoError(t, s.Run())
	for _, sub := range s.Subgraphs() {
		assert.LessOrEqual(t, len(sub), 2)
	}

	s.Reset()
	assert.Nil(t, s.Embeddings())
	assert.Nil(t, s.Subgraphs())
	assert.Equal(t, topo2vec.Defaults(), s.Params)
}

func TestRun_InvalidParams(t *testing.T) {
	for _, bad := range []impute.Params{
		{"embeddingDimensions": 0},
		{"tau": 2},
		{"expansionRounds": -1},
		{"maxSubgraphSize": 0.5},
	} {
		s := topo2vec.New(barbell(t), impute.WithLogger(quiet), impute.WithParams(bad))
		assert.ErrorIs(t, s.Run(), impute.ErrInvalidParam, "%v", bad)
	}
	assert.ErrorIs(t, topo2vec.New(nil).Run(), impute.ErrGraphNil)
}
