package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/plankpath/grid"
	"github.com/katalvlaran/plankpath/route"
)

// Stats reports the work done by the most recent search.
type Stats struct {
	// Nodes counts pillar visits.
	Nodes int64
	// DeadEnds counts visits refused because the pillar was already on the path.
	DeadEnds int64
	// Prunes counts branches cut because they could not beat the incumbent.
	Prunes int64
	// Candidates counts complete start-to-end paths reached.
	Candidates int64
	// Improvements counts how often the incumbent got strictly shorter.
	Improvements int64
	// ShortCircuit reports that a path of LowerBound planks ended the search.
	ShortCircuit bool
}

// add accumulates o into s.
func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.DeadEnds += o.DeadEnds
	s.Prunes += o.Prunes
	s.Candidates += o.Candidates
	s.Improvements += o.Improvements
	s.ShortCircuit = s.ShortCircuit || o.ShortCircuit
}

// Engine searches one layout for the shortest start-to-end path that uses
// at most one plank outside the layout.
//
// The layout is read, never written. live is the single path mutated by the
// depth-first search; best is the incumbent, replaced only by snapshots.
type Engine struct {
	gridSize      int
	maxCoordinate int
	layout        *grid.Layout
	start, end    grid.Coordinate
	lowerBound    int
	opts          Options

	current grid.Coordinate
	live    *route.Path
	best    *route.Path
	stats   Stats
}

// NewEngine prepares a search over a gridSize×gridSize grid of pillars.
//
// Returns an error wrapping grid.ErrOutOfRange if gridSize < 1 or the start
// or end pillar lies outside the grid, and grid.ErrNilInput if layout is nil.
// Complexity: O(1).
func NewEngine(gridSize int, layout *grid.Layout, opts ...Option) (*Engine, error) {
	// 1. Validate the grid and the layout.
	if gridSize < 1 {
		return nil, fmt.Errorf("search: grid size %d (must be ≥ 1): %w", gridSize, grid.ErrOutOfRange)
	}
	if layout == nil {
		return nil, fmt.Errorf("search: layout: %w", grid.ErrNilInput)
	}

	// 2. Apply options; the end defaults to the far corner.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	maxCoordinate := gridSize - 1
	if !o.endSet {
		o.End = grid.Coordinate{X: maxCoordinate, Y: maxCoordinate}
	}

	// 3. Validate the endpoints against this grid's own bound.
	if err := o.Start.Validate(maxCoordinate); err != nil {
		return nil, fmt.Errorf("search: start: %w", err)
	}
	if err := o.End.Validate(maxCoordinate); err != nil {
		return nil, fmt.Errorf("search: end: %w", err)
	}

	e := &Engine{
		gridSize:      gridSize,
		maxCoordinate: maxCoordinate,
		layout:        layout,
		start:         o.Start,
		end:           o.End,
		lowerBound:    grid.ManhattanDistance(o.Start, o.End),
		opts:          o,
	}
	e.Reset()

	return e, nil
}

// Reset rewinds the engine for another search: the live path is emptied, the
// current pillar returns to start and the incumbent returns to the infinite
// sentinel. Layout, endpoints and options are kept.
func (e *Engine) Reset() {
	e.current = e.start
	if e.live == nil {
		e.live = route.New()
	} else {
		e.live.Reset()
	}
	e.best = route.NewInfinite()
	e.stats = Stats{}
}

// ShortestPath runs the exact search from the current pillar and returns a
// finished path: a real start-to-end path whose Distance is its plank count,
// or an empty path with distance route.Infinite when end is unreachable.
// hasWildcard allows one plank outside the layout.
//
// ShortestPath is sequential and ignores the Workers, MaxNodes and TimeLimit
// options; use Search for budgeted or parallel runs. The incumbent survives
// between calls until Reset.
func (e *Engine) ShortestPath(hasWildcard bool) *route.Path {
	began := time.Now()
	w := e.newWalker(unbounded())
	res := w.search(e.current, hasWildcard)

	return e.finish("sequential", w.stats, e.settle(w, res), nil, began)
}

// Search runs ShortestPath under the configured budget. With WithWorkers(k>1)
// the root branches are explored concurrently.
//
// When the context is cancelled or a limit is hit, Search returns the best
// path found so far (possibly the infinite sentinel) together with ctx.Err(),
// ErrNodeLimit or ErrTimeLimit.
func (e *Engine) Search(ctx context.Context, hasWildcard bool) (*route.Path, error) {
	began := time.Now()
	b := newBudget(ctx, e.opts.MaxNodes, e.opts.TimeLimit)
	if !e.best.IsInfinite() {
		b.offer(e.best.Distance())
	}

	if e.opts.Workers > 1 {
		res, st, err := e.searchParallel(b, hasWildcard)
		if res.IsShorterThan(e.best) {
			e.best = res
		}
		return e.finish("parallel", st, e.best, err, began), err
	}

	w := e.newWalker(b)
	res := w.search(e.current, hasWildcard)
	err := w.err
	if errors.Is(err, errOptimalFound) {
		err = nil
	}

	return e.finish("sequential", w.stats, e.settle(w, res), err, began), err
}

// newWalker binds a walker to the engine's live path and incumbent.
func (e *Engine) newWalker(b *budget) *walker {
	return &walker{
		layout:        e.layout,
		maxCoordinate: e.maxCoordinate,
		end:           e.end,
		lowerBound:    e.lowerBound,
		current:       e.current,
		live:          e.live,
		best:          e.best,
		budget:        b,
	}
}

// settle folds the root result into the incumbent and adopts the walker's state.
func (e *Engine) settle(w *walker, res *route.Path) *route.Path {
	if res != w.best && res.IsShorterThan(w.best) {
		w.record(res)
	}
	e.best = w.best
	e.current = w.current

	return res
}

// finish records stats, logs and metrics, and returns an owned copy of res.
func (e *Engine) finish(mode string, st Stats, res *route.Path, err error, began time.Time) *route.Path {
	elapsed := time.Since(began)
	e.stats = st
	e.opts.Metrics.observe(mode, st, !res.IsInfinite(), err, elapsed)
	e.opts.Logger.Debug("search finished",
		slog.String("mode", mode),
		slog.Int("grid_size", e.gridSize),
		slog.String("start", e.start.String()),
		slog.String("end", e.end.String()),
		slog.Int("lower_bound", e.lowerBound),
		slog.Int("distance", res.Distance()),
		slog.Int64("nodes", st.Nodes),
		slog.Int64("prunes", st.Prunes),
		slog.Bool("short_circuit", st.ShortCircuit),
		slog.Duration("elapsed", elapsed),
		slog.Any("error", err),
	)

	return res.Snapshot()
}

// GridSize returns n for an n×n grid.
func (e *Engine) GridSize() int { return e.gridSize }

// MaxCoordinate returns the largest valid X or Y, n−1.
func (e *Engine) MaxCoordinate() int { return e.maxCoordinate }

// Layout returns the layout being searched. Callers must not mutate it
// while a search is running.
func (e *Engine) Layout() *grid.Layout { return e.layout }

// Start returns the start pillar.
func (e *Engine) Start() grid.Coordinate { return e.start }

// End returns the end pillar.
func (e *Engine) End() grid.Coordinate { return e.end }

// LowerBound returns the Manhattan distance from start to end.
func (e *Engine) LowerBound() int { return e.lowerBound }

// Current returns the pillar the next search starts from.
func (e *Engine) Current() grid.Coordinate { return e.current }

// Live returns a snapshot of the live path. Between searches it is empty.
func (e *Engine) Live() *route.Path { return e.live.Snapshot() }

// Best returns a snapshot of the incumbent.
func (e *Engine) Best() *route.Path { return e.best.Snapshot() }

// Stats returns the counters of the most recent search.
func (e *Engine) Stats() Stats { return e.stats }
