package knn_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphimpute/builder"
	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/impute"
	"github.com/katalvlaran/graphimpute/knn"
)

var nan = math.NaN()

// KNNSuite runs the strategy against small hand-checked graphs.
type KNNSuite struct {
	suite.Suite
	logs *bytes.Buffer
	log  *slog.Logger
}

func (s *KNNSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.log = slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// sample is 1:[1,#] - 2:[2,3] - 3:[3,4] - 4:[#,5].
func (s *KNNSuite) sample() *core.Graph {
	g := core.NewGraph()
	s.Require().NoError(g.AddNode(1, []float64{1, nan}, 0))
	s.Require().NoError(g.AddNode(2, []float64{2, 3}, 1))
	s.Require().NoError(g.AddNode(3, []float64{3, 4}, 1))
	s.Require().NoError(g.AddNode(4, []float64{nan, 5}, 0))
	s.Require().NoError(g.AddEdge(1, 2))
	s.Require().NoError(g.AddEdge(2, 3))
	s.Require().NoError(g.AddEdge(3, 4))
	return g
}

// TestConcreteScenario checks the two-nearest-neighbor averages on the chain.
func (s *KNNSuite) TestConcreteScenario() {
	g := s.sample()
	st := knn.New(g, impute.WithLogger(s.log))
	st.Configure(impute.Params{"k": 2})
	s.Require().NoError(st.Run())

	out := st.ExtractResults()
	s.Same(g, out)
	// node 1 compares against 2 (d=1) and 3 (d=2)
	s.Equal([]float64{1, 3.5}, out.Features(1))
	// node 4 compares against 3 (d=1) and 2 (d=2)
	s.Equal([]float64{2.5, 5}, out.Features(4))
	s.Equal([]float64{2, 3}, out.Features(2))
	s.Zero(out.MissingCount())
	s.Equal(impute.FillStats{Filled: 2, Remaining: 0, Iterations: 1}, st.Stats())
	s.Empty(s.logs.String())
}

// TestIsolatedNodeStaysMissing verifies the non-fatal cap behavior.
func (s *KNNSuite) TestIsolatedNodeStaysMissing() {
	g := s.sample()
	s.Require().NoError(g.AddNode(5, []float64{nan, nan}, 0))

	st := knn.New(g, impute.WithLogger(s.log), impute.WithParams(impute.Params{"k": 2, "maxIterations": 4}))
	s.Require().NoError(st.Run())

	f := g.Features(5)
	s.True(math.IsNaN(f[0]) && math.IsNaN(f[1]))
	s.Equal(2, g.MissingCount())
	s.Equal(4, st.Stats().Iterations)
	s.Equal(1, bytes.Count(s.logs.Bytes(), []byte("could not fill all features")))
}

// TestConvergenceAlongChain shows one hop of progress per iteration.
func (s *KNNSuite) TestConvergenceAlongChain() {
	build := func() *core.Graph {
		g := core.NewGraph()
		s.Require().NoError(g.AddNode(0, []float64{7}, 0))
		for id := 1; id < 10; id++ {
			s.Require().NoError(g.AddNode(id, []float64{nan}, 0))
			s.Require().NoError(g.AddEdge(id-1, id))
		}
		return g
	}

	// k=1: each node's comparison set is its lower neighbor
	g := build()
	st := knn.New(g, impute.WithLogger(s.log), impute.WithParams(impute.Params{"k": 1, "maxIterations": 3}))
	s.Require().NoError(st.Run())
	for id := 1; id <= 3; id++ {
		s.Equal([]float64{7}, g.Features(id), "node %d", id)
	}
	s.True(math.IsNaN(g.Features(4)[0]))
	s.Equal(6, g.MissingCount())

	g = build()
	st = knn.New(g, impute.WithLogger(s.log), impute.WithParams(impute.Params{"k": 1, "maxIterations": 20}))
	s.Require().NoError(st.Run())
	s.Zero(g.MissingCount())
	s.Equal(9, st.Stats().Iterations)
	for _, id := range g.Nodes() {
		s.Equal([]float64{7}, g.Features(id))
	}
}

// TestFillsMaskedGrid masks a connected lattice at random: every hidden
// value comes back, inside the observed range, and observed values stay put.
func (s *KNNSuite) TestFillsMaskedGrid() {
	g, err := builder.BuildGraph(3,
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformFeatures(-1, 1)},
		builder.Grid(5, 5))
	s.Require().NoError(err)
	masked, err := builder.MaskMCAR(g, 0.3, rand.New(rand.NewSource(6)))
	s.Require().NoError(err)
	s.Require().Positive(masked)
	observed := g.FeatureSnapshot()
	lo, hi := observedRange(observed)

	st := knn.New(g, impute.WithLogger(s.log), impute.WithParams(impute.Params{"k": 4}))
	s.Require().NoError(st.Run())

	s.Zero(g.MissingCount())
	s.Equal(masked, st.Stats().Filled)
	s.Empty(s.logs.String(), "no cap warning on a connected grid")
	for id, before := range observed {
		for d, v := range g.Features(id) {
			if !math.IsNaN(before[d]) {
				s.Equal(before[d], v, "observed value of %d moved", id)
				continue
			}
			s.GreaterOrEqual(v, lo[d])
			s.LessOrEqual(v, hi[d])
		}
	}
}

// observedRange returns the per-dimension bounds of the present values.
func observedRange(snap map[int][]float64) (lo, hi []float64) {
	for _, feats := range snap {
		if lo == nil {
			lo = make([]float64, len(feats))
			hi = make([]float64, len(feats))
			for d := range lo {
				lo[d], hi[d] = math.Inf(1), math.Inf(-1)
			}
		}
		for d, v := range feats {
			if !math.IsNaN(v) {
				lo[d], hi[d] = math.Min(lo[d], v), math.Max(hi[d], v)
			}
		}
	}
	return lo, hi
}

// TestResetAndValidation covers the parameter lifecycle.
func (s *KNNSuite) TestResetAndValidation() {
	g := s.sample()
	st := knn.New(g, impute.WithLogger(s.log))
	s.Equal(knn.Defaults(), st.Params)

	st.Configure(impute.Params{"k": 0, "walkLength": 3})
	s.Equal(0.0, st.Params["k"])
	s.NotContains(st.Params, "walkLength")
	s.ErrorIs(st.Run(), impute.ErrInvalidParam)

	st.Configure(impute.Params{"k": 2.5})
	s.ErrorIs(st.Run(), impute.ErrInvalidParam)

	st.Reset()
	s.Equal(knn.Defaults(), st.Params)
	s.NoError(st.Run())
	s.Zero(g.MissingCount())

	s.ErrorIs(knn.New(nil).Run(), impute.ErrGraphNil)
}

func TestKNNSuite(t *testing.T) {
	suite.Run(t, new(KNNSuite))
}

// TestRun_EdgeOnlyNeighbors covers neighbors referenced only by edges.
func TestRun_EdgeOnlyNeighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, []float64{nan}, 0))
	require.NoError(t, g.AddNode(2, []float64{4}, 0))
	// 1 has no node record; it is still a hop on the path
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	st := knn.New(g, impute.WithParams(impute.Params{"k": 2}))
	require.NoError(t, st.Run())
	assert.Equal(t, []float64{4}, g.Features(0))
}
