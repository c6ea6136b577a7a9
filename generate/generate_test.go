package generate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plankpath/generate"
	"github.com/katalvlaran/plankpath/grid"
	"github.com/katalvlaran/plankpath/route"
)

func TestComplete(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{1, 0}, {2, 4}, {3, 12}, {10, 180},
	}
	for _, tc := range cases {
		l, err := generate.Complete(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, l.Len(), "n=%d", tc.n)
		assert.NoError(t, l.Validate(tc.n-1))
	}

	_, err := generate.Complete(0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestRandom_DensityAndDeterminism(t *testing.T) {
	a, err := generate.Random(5, 0.5, generate.WithSeed(7))
	require.NoError(t, err)
	b, err := generate.Random(5, 0.5, generate.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, 20, a.Len(), "⌊0.5·40⌋ planks")
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same layout")
	assert.NoError(t, a.Validate(4))

	full, err := generate.Random(4, 1, generate.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 24, full.Len())

	empty, err := generate.Random(4, 0, generate.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestRandom_Errors(t *testing.T) {
	_, err := generate.Random(0, 0.5, generate.WithSeed(1))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	for _, d := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = generate.Random(3, d, generate.WithSeed(1))
		assert.ErrorIs(t, err, generate.ErrInvalidDensity, "density %v", d)
	}

	_, err = generate.Random(3, 0.5)
	assert.ErrorIs(t, err, generate.ErrNeedRandSource)

	assert.Panics(t, func() { generate.WithRand(nil) })
}

func TestStaircase_PlantedPath(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		for _, n := range []int{1, 2, 5, 8} {
			pl, err := generate.Staircase(n, 0.2, generate.WithSeed(seed))
			require.NoError(t, err)

			end := grid.Coordinate{X: n - 1, Y: n - 1}
			assert.Equal(t, 2*(n-1), pl.Path.Distance(), "staircase is monotone")
			assert.NoError(t, route.Verify(pl.Path, pl.Layout, grid.Coordinate{}, end))
			assert.NoError(t, pl.Layout.Validate(n-1))
		}
	}
}

func TestStaircase_Gap(t *testing.T) {
	pl, err := generate.Staircase(6, 0.3, generate.WithSeed(3), generate.WithGap())
	require.NoError(t, err)

	gap, ok := pl.Path.ExtraEdge()
	require.True(t, ok, "gap recorded as the extra plank")
	assert.False(t, pl.Layout.Contains(gap), "gap is withheld from the layout")
	assert.NoError(t, route.Verify(pl.Path, pl.Layout, grid.Coordinate{}, grid.Coordinate{X: 5, Y: 5}))

	// A single pillar has no plank to withhold.
	one, err := generate.Staircase(1, 0, generate.WithSeed(3), generate.WithGap())
	require.NoError(t, err)
	_, ok = one.Path.ExtraEdge()
	assert.False(t, ok)
}
