package core_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphimpute/core"
)

// EdgeStoreSuite exercises the CSR adjacency store.
type EdgeStoreSuite struct {
	suite.Suite
	store *core.EdgeStore
}

// SetupTest builds the square 0-1-2-3-0 plus chord 0-2.
func (s *EdgeStoreSuite) SetupTest() {
	st, err := core.NewEdgeStore([]core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}, {From: 2, To: 0},
	})
	require.NoError(s.T(), err)
	s.store = st
}

// TestBulkLayout checks sorted neighbor runs and edge count.
func (s *EdgeStoreSuite) TestBulkLayout() {
	require.Equal(s.T(), 5, s.store.Size())
	require.Equal(s.T(), 4, s.store.Span())
	require.Equal(s.T(), []int{1, 2, 3}, s.store.Neighbors(0))
	require.Equal(s.T(), []int{0, 2}, s.store.Neighbors(1))
	require.Equal(s.T(), []int{0, 1, 3}, s.store.Neighbors(2))
	require.Equal(s.T(), []int{0, 2}, s.store.Neighbors(3))
}

// TestEdgesCanonical verifies every edge appears once with From < To.
func (s *EdgeStoreSuite) TestEdgesCanonical() {
	want := []core.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}
	require.Equal(s.T(), want, s.store.Edges())
}

// TestSymmetry verifies IsEdge and Neighbors agree in both directions.
func (s *EdgeStoreSuite) TestSymmetry() {
	for _, e := range s.store.Edges() {
		require.True(s.T(), s.store.IsEdge(e.From, e.To))
		require.True(s.T(), s.store.IsEdge(e.To, e.From))
		require.Contains(s.T(), s.store.Neighbors(e.From), e.To)
		require.Contains(s.T(), s.store.Neighbors(e.To), e.From)
	}
	require.False(s.T(), s.store.IsEdge(1, 3))
}

// TestAddEdgeInsertAndShift adds edges inside and beyond the current span.
func (s *EdgeStoreSuite) TestAddEdgeInsertAndShift() {
	require.NoError(s.T(), s.store.AddEdge(1, 3))
	require.Equal(s.T(), 6, s.store.Size())
	require.Equal(s.T(), []int{0, 2, 3}, s.store.Neighbors(1))
	require.Equal(s.T(), []int{0, 1, 2}, s.store.Neighbors(3))

	// beyond span: node 6 did not exist yet
	require.NoError(s.T(), s.store.AddEdge(6, 2))
	require.Equal(s.T(), 7, s.store.Span())
	require.Equal(s.T(), []int{2}, s.store.Neighbors(6))
	require.Equal(s.T(), []int{0, 1, 3, 6}, s.store.Neighbors(2))
	require.Empty(s.T(), s.store.Neighbors(5))

	// previously stored runs are untouched
	require.Equal(s.T(), []int{1, 2, 3}, s.store.Neighbors(0))
}

// TestAddEdgeDuplicateIsNoop ensures no duplicate edges are stored.
func (s *EdgeStoreSuite) TestAddEdgeDuplicateIsNoop() {
	require.NoError(s.T(), s.store.AddEdge(1, 0))
	require.Equal(s.T(), 5, s.store.Size())
	require.Equal(s.T(), []int{0, 2}, s.store.Neighbors(1))
}

// TestAddEdgeErrors covers invalid input.
func (s *EdgeStoreSuite) TestAddEdgeErrors() {
	require.True(s.T(), errors.Is(s.store.AddEdge(2, 2), core.ErrLoopNotAllowed))
	require.True(s.T(), errors.Is(s.store.AddEdge(-1, 2), core.ErrNegativeID))
}

// TestOutOfRange verifies read paths tolerate unknown IDs.
func (s *EdgeStoreSuite) TestOutOfRange() {
	require.Empty(s.T(), s.store.Neighbors(99))
	require.Empty(s.T(), s.store.Neighbors(-4))
	require.Zero(s.T(), s.store.Degree(99))
	require.False(s.T(), s.store.IsEdge(99, 0))
	require.True(s.T(), math.IsNaN(s.store.Weight(99, 0)))
}

// TestWeights covers canonical keys and the unset sentinel.
func (s *EdgeStoreSuite) TestWeights() {
	require.True(s.T(), math.IsNaN(s.store.Weight(0, 1)))
	s.store.SetWeight(1, 0, 0.25)
	require.Equal(s.T(), 0.25, s.store.Weight(0, 1))
	require.Equal(s.T(), 0.25, s.store.Weight(1, 0))

	// zero is a real weight, distinct from unset
	s.store.SetWeight(2, 3, 0)
	require.Equal(s.T(), 0.0, s.store.Weight(3, 2))

	s.store.ClearWeights()
	require.True(s.T(), math.IsNaN(s.store.Weight(0, 1)))
}

func TestEdgeStoreSuite(t *testing.T) {
	suite.Run(t, new(EdgeStoreSuite))
}

// TestNewEdgeStore_Normalization drops loops and collapses duplicates.
func TestNewEdgeStore_Normalization(t *testing.T) {
	st, err := core.NewEdgeStore([]core.Edge{{1, 2}, {2, 1}, {3, 3}, {1, 2}})
	require.NoError(t, err)
	require.Equal(t, 1, st.Size())
	require.Equal(t, []core.Edge{{1, 2}}, st.Edges())
	require.Empty(t, st.Neighbors(0))
	require.Empty(t, st.Neighbors(3))

	_, err = core.NewEdgeStore([]core.Edge{{0, -2}})
	require.ErrorIs(t, err, core.ErrNegativeID)

	empty, err := core.NewEdgeStore(nil)
	require.NoError(t, err)
	require.Zero(t, empty.Size())
	require.Empty(t, empty.Edges())
}

// TestEdgeStore_ZeroValue ensures the zero value accepts edges.
func TestEdgeStore_ZeroValue(t *testing.T) {
	var st core.EdgeStore
	require.NoError(t, st.AddEdge(2, 0))
	require.Equal(t, []int{2}, st.Neighbors(0))
	require.Equal(t, []int{0}, st.Neighbors(2))
	require.Empty(t, st.Neighbors(1))
	st.SetWeight(0, 2, 1.5)
	require.Equal(t, 1.5, st.Weight(2, 0))
}

// TestEdgeStore_RandomSymmetry compares bulk and incremental builds on a random graph.
func TestEdgeStore_RandomSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const n = 40
	var pairs []core.Edge
	for i := 0; i < 120; i++ {
		pairs = append(pairs, core.Edge{From: r.Intn(n), To: r.Intn(n)})
	}

	bulk, err := core.NewEdgeStore(pairs)
	require.NoError(t, err)

	var inc core.EdgeStore
	for _, p := range pairs {
		if p.From == p.To {
			continue
		}
		require.NoError(t, inc.AddEdge(p.From, p.To))
	}

	require.Equal(t, bulk.Edges(), inc.Edges())
	for a := 0; a < n; a++ {
		nb := bulk.Neighbors(a)
		require.True(t, slices.IsSorted(nb))
		for _, b := range nb {
			require.Contains(t, bulk.Neighbors(b), a)
		}
	}
}
