package similarity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphimpute/core"
	"github.com/katalvlaran/graphimpute/similarity"
)

func TestAttribute(t *testing.T) {
	nan := math.NaN()
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"parallel over common dims", []float64{1, nan, 2}, []float64{2, 5, 4}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 3}, 0},
		{"negative clamped", []float64{1, 0}, []float64{-1, 0}, 0},
		{"no common dims", []float64{nan, 1}, []float64{1, nan}, 0},
		{"zero norm", []float64{0, 0}, []float64{1, 1}, 0},
		{"empty", nil, nil, 0},
		{"length mismatch uses prefix", []float64{1, 1}, []float64{1, 1, 7}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := similarity.Attribute(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.False(t, math.IsNaN(got))
		})
	}
	assert.InDelta(t, 0.6, similarity.Attribute([]float64{3, 4}, []float64{1, 0}), 1e-12)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, -1, similarity.Cosine([]float64{1, 2}, []float64{-1, -2}), 1e-12)
	assert.Zero(t, similarity.Cosine([]float64{1}, []float64{1, 2}))
	assert.Zero(t, similarity.Cosine([]float64{0, 0}, []float64{1, 2}))
}

func chain(t *testing.T, n int) *core.EdgeStore {
	t.Helper()
	var pairs []core.Edge
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, core.Edge{From: i, To: i + 1})
	}
	st, err := core.NewEdgeStore(pairs)
	require.NoError(t, err)
	return st
}

func TestCovers(t *testing.T) {
	covers, err := similarity.NewCovers(chain(t, 5), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, covers.Depth())

	assert.Equal(t, []int{0, 1, 2}, covers.Cover(1))
	assert.Equal(t, []int{0, 1}, covers.Cover(0))
	assert.Equal(t, []int{9}, covers.Cover(9), "unknown ids cover themselves")

	assert.InDelta(t, 0.5, covers.Structural(1, 2), 1e-12)
	assert.Zero(t, covers.Structural(0, 4))
	assert.InDelta(t, 1, covers.Structural(3, 3), 1e-12)
	assert.InDelta(t, covers.Structural(1, 2), covers.Structural(2, 1), 1e-12)

	covers.Purge()
	assert.Equal(t, []int{0, 1, 2}, covers.Cover(1))
}

func TestCovers_DepthZeroAndTwo(t *testing.T) {
	self, err := similarity.NewCovers(chain(t, 5), 0, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, self.Cover(2))
	assert.Zero(t, self.Structural(1, 2))

	two, err := similarity.NewCovers(chain(t, 5), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, two.Cover(2))
	// {0,1,2} vs {2,3,4}
	assert.InDelta(t, 1.0/5, two.Structural(0, 4), 1e-12)

	_, err = similarity.NewCovers(chain(t, 2), -1, 0)
	assert.ErrorIs(t, err, similarity.ErrNegativeDepth)
}

func TestCovers_UnsearchableStart(t *testing.T) {
	covers, err := similarity.NewCovers(chain(t, 3), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1}, covers.Cover(-1))
	assert.Zero(t, covers.Structural(-1, 0))

	var none *core.EdgeStore
	empty, err := similarity.NewCovers(none, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, empty.Cover(4))
}

func TestTopK_OrderAndSelfExclusion(t *testing.T) {
	query := []float64{1, 0}
	emb := map[int][]float64{
		0: {1, 0}, // the query itself
		1: {1, 0.1},
		2: {0, 1},
		3: {1, 1},
		4: {-1, 0},
	}

	got := similarity.TopK(emb, query, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	assert.Greater(t, got[0].Score, got[1].Score)
	assert.Equal(t, []float64{1, 1}, got[1].Vector)

	all := similarity.TopK(emb, query, 10)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Score, all[i].Score)
	}
	for _, m := range all {
		assert.NotEqual(t, 0, m.ID)
	}
}

func TestTopK_Degenerate(t *testing.T) {
	emb := map[int][]float64{1: {1, 2}, 2: {0, 0}, 3: {1, 2, 3}}
	assert.Nil(t, similarity.TopK(emb, []float64{0, 0}, 3))
	assert.Nil(t, similarity.TopK(emb, []float64{1, 1}, 0))
	assert.Nil(t, similarity.TopK(emb, nil, 2))

	got := similarity.TopK(emb, []float64{1, 1}, 3)
	require.Len(t, got, 1, "zero-norm and mismatched candidates are excluded")
	assert.Equal(t, 1, got[0].ID)
}

func TestTopK_TiesBreakByID(t *testing.T) {
	emb := map[int][]float64{7: {2, 0}, 3: {1, 0}, 5: {4, 0}, 9: {0, 1}}
	got := similarity.TopK(emb, []float64{1, 1e-9}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, []int{3, 5}, []int{got[0].ID, got[1].ID})
}

func TestSample(t *testing.T) {
	emb := map[int][]float64{1: {1}, 2: {2}, 3: {3}}
	rng := rand.New(rand.NewSource(4))

	s := similarity.Sample(emb, 2, rng)
	assert.NotEmpty(t, s)
	assert.LessOrEqual(t, len(s), 2)
	for id, v := range s {
		assert.Equal(t, emb[id], v)
	}

	full := similarity.Sample(emb, 500, rng)
	assert.Len(t, full, 3)

	assert.Empty(t, similarity.Sample(emb, 0, rng))
	assert.Empty(t, similarity.Sample(nil, 5, rng))
}
