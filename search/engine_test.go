// Package search_test covers the sequential engine.
// Focus:
//  1. Constructor sentinels (grid size, nil layout, endpoints off the grid).
//  2. The reference scenarios: single pillar, bridged gap, unbridged gap,
//     empty layout, complete layout.
//  3. Properties on planted layouts: lower bound, adjacency, acyclicity and at
//     most one extra plank, all checked through route.Verify.
//  4. Determinism after Reset and snapshot ownership of results.
package search_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plankpath/generate"
	"github.com/katalvlaran/plankpath/grid"
	"github.com/katalvlaran/plankpath/route"
	"github.com/katalvlaran/plankpath/search"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func pt(x, y int) grid.Coordinate { return grid.Coordinate{X: x, Y: y} }

func plank(ax, ay, bx, by int) grid.Edge { return grid.NewEdge(pt(ax, ay), pt(bx, by)) }

func mustEngine(t testing.TB, n int, l *grid.Layout, opts ...search.Option) *search.Engine {
	t.Helper()
	e, err := search.NewEngine(n, l, opts...)
	require.NoError(t, err)

	return e
}

// detourLayout forces the only layout path from (0,0) to (2,0) through row 1.
func detourLayout() *grid.Layout {
	return grid.NewLayout(
		plank(0, 0, 0, 1),
		plank(0, 1, 1, 1),
		plank(1, 1, 2, 1),
		plank(2, 1, 2, 0),
	)
}

// -----------------------------------------------------------------------------
// Construction
// -----------------------------------------------------------------------------

func TestNewEngine_Errors(t *testing.T) {
	l := grid.NewLayout()

	_, err := search.NewEngine(0, l)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = search.NewEngine(-3, l)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = search.NewEngine(3, nil)
	assert.ErrorIs(t, err, grid.ErrNilInput)

	_, err = search.NewEngine(3, l, search.WithStart(pt(3, 0)))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = search.NewEngine(3, l, search.WithEnd(pt(0, -1)))
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestNewEngine_Defaults(t *testing.T) {
	l := grid.NewLayout()
	e := mustEngine(t, 5, l)

	assert.Equal(t, 5, e.GridSize())
	assert.Equal(t, 4, e.MaxCoordinate())
	assert.Same(t, l, e.Layout())
	assert.Equal(t, pt(0, 0), e.Start())
	assert.Equal(t, pt(4, 4), e.End())
	assert.Equal(t, 8, e.LowerBound())
	assert.Equal(t, pt(0, 0), e.Current())
	assert.True(t, e.Live().IsEmpty())
	assert.True(t, e.Best().IsInfinite())

	custom := mustEngine(t, 5, l, search.WithStart(pt(4, 1)), search.WithEnd(pt(1, 3)))
	assert.Equal(t, pt(4, 1), custom.Current())
	assert.Equal(t, 5, custom.LowerBound())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { search.WithWorkers(0) })
	assert.Panics(t, func() { search.WithMaxNodes(-1) })
	assert.Panics(t, func() { search.WithTimeLimit(-1) })
	assert.Panics(t, func() { search.WithLogger(nil) })
	assert.NotPanics(t, func() { search.WithMaxNodes(0) })
}

// -----------------------------------------------------------------------------
// Reference scenarios
// -----------------------------------------------------------------------------

func TestShortestPath_SinglePillar(t *testing.T) {
	for _, wildcard := range []bool{false, true} {
		e := mustEngine(t, 1, grid.NewLayout())
		got := e.ShortestPath(wildcard)

		assert.Equal(t, []grid.Coordinate{pt(0, 0)}, got.Coordinates())
		assert.Equal(t, 0, got.Distance())
		_, ok := got.ExtraEdge()
		assert.False(t, ok)
	}
}

func TestShortestPath_WildcardBridgesGap(t *testing.T) {
	e := mustEngine(t, 2, grid.NewLayout(plank(0, 0, 1, 0)))
	got := e.ShortestPath(true)

	assert.Equal(t, []grid.Coordinate{pt(0, 0), pt(1, 0), pt(1, 1)}, got.Coordinates())
	assert.Equal(t, 2, got.Distance())
	extra, ok := got.ExtraEdge()
	require.True(t, ok)
	assert.Equal(t, plank(1, 0, 1, 1), extra)
	assert.False(t, e.Layout().Contains(extra))
	assert.True(t, e.Stats().ShortCircuit)
}

func TestShortestPath_GapWithoutWildcard(t *testing.T) {
	e := mustEngine(t, 2, grid.NewLayout(plank(0, 0, 1, 0)))
	got := e.ShortestPath(false)

	assert.True(t, got.IsInfinite())
	assert.Equal(t, route.Infinite, got.Distance())
	assert.False(t, e.Stats().ShortCircuit)
}

func TestShortestPath_EmptyLayoutLargeGrid(t *testing.T) {
	e := mustEngine(t, 10, grid.NewLayout())

	assert.True(t, e.ShortestPath(true).IsInfinite(), "one plank cannot cover 18 steps")
}

func TestShortestPath_CompleteLayout(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		l, err := generate.Complete(n)
		require.NoError(t, err)

		for _, wildcard := range []bool{false, true} {
			e := mustEngine(t, n, l)
			got := e.ShortestPath(wildcard)

			assert.Equal(t, e.LowerBound(), got.Distance(), "n=%d wildcard=%v", n, wildcard)
			assert.NoError(t, route.Verify(got, l, e.Start(), e.End()))
			_, ok := got.ExtraEdge()
			assert.False(t, ok, "no plank is missing from a complete layout")
		}
	}
}

func TestShortestPath_CustomEndpoints(t *testing.T) {
	l, err := generate.Complete(4)
	require.NoError(t, err)
	e := mustEngine(t, 4, l, search.WithStart(pt(3, 3)), search.WithEnd(pt(1, 0)))
	got := e.ShortestPath(false)

	assert.Equal(t, 5, got.Distance())
	assert.NoError(t, route.Verify(got, l, pt(3, 3), pt(1, 0)))
}

// -----------------------------------------------------------------------------
// Detours, improvements and tie-breaks
// -----------------------------------------------------------------------------

func TestShortestPath_DetourWithoutShortCircuit(t *testing.T) {
	e := mustEngine(t, 3, detourLayout(), search.WithEnd(pt(2, 0)))
	got := e.ShortestPath(false)

	want := []grid.Coordinate{pt(0, 0), pt(0, 1), pt(1, 1), pt(2, 1), pt(2, 0)}
	assert.Equal(t, want, got.Coordinates())
	assert.Equal(t, 4, got.Distance())

	st := e.Stats()
	assert.False(t, st.ShortCircuit)
	assert.GreaterOrEqual(t, st.Improvements, int64(1))
	assert.GreaterOrEqual(t, st.DeadEnds, int64(1), "(1,1) is reachable again from (2,1)")
}

func TestShortestPath_WildcardShortensDetour(t *testing.T) {
	l := detourLayout()
	l.Add(plank(1, 0, 2, 0))
	e := mustEngine(t, 3, l, search.WithEnd(pt(2, 0)))

	without := e.ShortestPath(false)
	assert.Equal(t, 4, without.Distance())

	e.Reset()
	with := e.ShortestPath(true)
	assert.Equal(t, []grid.Coordinate{pt(0, 0), pt(1, 0), pt(2, 0)}, with.Coordinates())
	extra, ok := with.ExtraEdge()
	require.True(t, ok)
	assert.Equal(t, plank(0, 0, 1, 0), extra)
	assert.NoError(t, route.Verify(with, l, e.Start(), e.End()))
}

func TestShortestPath_TieBreakFollowsNeighborOrder(t *testing.T) {
	l, err := generate.Complete(2)
	require.NoError(t, err)
	e := mustEngine(t, 2, l)

	got := e.ShortestPath(false)
	assert.Equal(t, "(0,0) --> (1,0) --> (1,1)", got.String(), "+X is tried before +Y")
}

// -----------------------------------------------------------------------------
// State handling
// -----------------------------------------------------------------------------

func TestShortestPath_LivePathRestored(t *testing.T) {
	e := mustEngine(t, 3, detourLayout(), search.WithEnd(pt(2, 0)))
	e.ShortestPath(true)

	assert.True(t, e.Live().IsEmpty(), "every step is undone")
	assert.Equal(t, e.Start(), e.Current())
}

func TestShortestPath_ResultIsOwned(t *testing.T) {
	e := mustEngine(t, 2, grid.NewLayout(plank(0, 0, 1, 0)))
	got := e.ShortestPath(true)

	got.RemoveLast(pt(1, 1))
	got.ClearExtraEdge()
	assert.Equal(t, 2, e.Best().Distance(), "mutating the result leaves the incumbent alone")
	_, ok := e.Best().ExtraEdge()
	assert.True(t, ok)
}

func TestReset_Deterministic(t *testing.T) {
	pl, err := generate.Staircase(5, 0.4, generate.WithSeed(11), generate.WithGap())
	require.NoError(t, err)
	e := mustEngine(t, 5, pl.Layout)

	first := e.ShortestPath(true)
	firstStats := e.Stats()
	e.Reset()
	assert.True(t, e.Best().IsInfinite())
	second := e.ShortestPath(true)

	assert.True(t, first.Equal(second), "%s vs %s", first, second)
	assert.Equal(t, firstStats, e.Stats())
}

func TestShortestPath_IncumbentSurvivesWithoutReset(t *testing.T) {
	e := mustEngine(t, 3, detourLayout(), search.WithEnd(pt(2, 0)))
	first := e.ShortestPath(false)
	second := e.ShortestPath(false)

	assert.True(t, first.Equal(second))
	assert.Zero(t, e.Stats().Improvements, "nothing beats the kept incumbent")
}

// -----------------------------------------------------------------------------
// Properties on generated layouts
// -----------------------------------------------------------------------------

func TestShortestPath_PlantedStaircase(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		for n := 2; n <= 6; n++ {
			pl, err := generate.Staircase(n, 0.3, generate.WithSeed(seed))
			require.NoError(t, err)
			e := mustEngine(t, n, pl.Layout)

			got := e.ShortestPath(false)
			require.Equal(t, 2*(n-1), got.Distance(), "seed=%d n=%d", seed, n)
			assert.NoError(t, route.Verify(got, pl.Layout, e.Start(), e.End()))
		}
	}
}

func TestShortestPath_PlantedStaircaseWithGap(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		for n := 2; n <= 6; n++ {
			pl, err := generate.Staircase(n, 0.3, generate.WithSeed(seed), generate.WithGap())
			require.NoError(t, err)
			e := mustEngine(t, n, pl.Layout)

			got := e.ShortestPath(true)
			require.Equal(t, 2*(n-1), got.Distance(), "seed=%d n=%d", seed, n)
			assert.NoError(t, route.Verify(got, pl.Layout, e.Start(), e.End()))

			e.Reset()
			without := e.ShortestPath(false)
			assert.False(t, without.IsShorterThan(got), "the wildcard never hurts")
		}
	}
}

func TestShortestPath_RandomLayouts(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		l, err := generate.Random(4, 0.5, generate.WithSeed(seed))
		require.NoError(t, err)
		e := mustEngine(t, 4, l)

		without := e.ShortestPath(false)
		e.Reset()
		with := e.ShortestPath(true)

		for _, got := range []*route.Path{without, with} {
			if got.IsInfinite() {
				continue
			}
			assert.GreaterOrEqual(t, got.Distance(), e.LowerBound(), "seed=%d", seed)
			assert.NoError(t, route.Verify(got, l, e.Start(), e.End()), "seed=%d", seed)
		}
		_, extra := without.ExtraEdge()
		assert.False(t, extra, "no extra plank without the wildcard")
		assert.False(t, without.IsShorterThan(with), "seed=%d", seed)
	}
}

// -----------------------------------------------------------------------------
// Logging
// -----------------------------------------------------------------------------

func TestShortestPath_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := mustEngine(t, 2, grid.NewLayout(plank(0, 0, 1, 0)), search.WithLogger(logger))

	e.ShortestPath(true)

	out := buf.String()
	assert.Contains(t, out, `"msg":"search finished"`)
	assert.Contains(t, out, `"mode":"sequential"`)
	assert.Contains(t, out, `"distance":2`)
	assert.Contains(t, out, `"short_circuit":true`)
}
