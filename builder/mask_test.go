package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphimpute/builder"
)

func TestMaskMCAR(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Grid(10, 10))
	require.NoError(t, err)

	masked, err := builder.MaskMCAR(g, 0.5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, masked, g.MissingCount())
	// 400 entries at rate 0.5
	assert.InDelta(t, 200, masked, 40)

	// a second pass only touches entries that are still present
	more, err := builder.MaskMCAR(g, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 400-masked, more)
	assert.Equal(t, 400, g.MissingCount())
}

func TestMaskMCAR_Deterministic(t *testing.T) {
	run := func() map[int][]float64 {
		g, err := builder.BuildGraph(2, nil, builder.Cycle(20))
		require.NoError(t, err)
		_, err = builder.MaskMCAR(g, 0.3, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		return g.FeatureSnapshot()
	}
	a, b := run(), run()
	for id := range a {
		assert.Equal(t, len(a[id]), len(b[id]))
		for i := range a[id] {
			assert.Equal(t, math.IsNaN(a[id][i]), math.IsNaN(b[id][i]), "node %d dim %d", id, i)
		}
	}
}

func TestMaskMCAR_Errors(t *testing.T) {
	g, err := builder.BuildGraph(1, nil, builder.Path(3))
	require.NoError(t, err)

	n, err := builder.MaskMCAR(g, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = builder.MaskMCAR(g, -0.1, nil)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.MaskMCAR(g, 0.5, nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.MaskMCAR(nil, 0.5, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
