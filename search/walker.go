package search

import (
	"github.com/katalvlaran/plankpath/grid"
	"github.com/katalvlaran/plankpath/route"
)

// verdict is the outcome of visiting one pillar.
type verdict int

const (
	// proceed: the pillar was appended and its neighbors should be explored.
	proceed verdict = iota
	// cycle: the pillar is already on the live path; nothing was appended.
	cycle
	// complete: the pillar is the end; a candidate snapshot was produced.
	complete
	// pruned: the live path can no longer beat the incumbent.
	pruned
)

// walker runs the depth-first search over one live path.
//
// live is mutated in place and restored on every return path; best is only
// ever replaced by snapshots, never mutated, so it can be handed out freely.
type walker struct {
	layout        *grid.Layout
	maxCoordinate int
	end           grid.Coordinate
	lowerBound    int

	current grid.Coordinate
	live    *route.Path
	best    *route.Path

	budget *budget
	stats  Stats
	err    error // set once the budget is exhausted; the search unwinds
}

// search visits c and, unless the visit settled the branch, explores onward.
// hasWildcard reports whether the extra plank is still available.
func (w *walker) search(c grid.Coordinate, hasWildcard bool) *route.Path {
	if w.err != nil {
		return w.best
	}
	if err := w.budget.charge(); err != nil {
		w.err = err
		return w.best
	}

	prev := w.current
	v, res := w.visit(c)
	if v == cycle {
		return res
	}
	defer w.leave(c, prev)
	if v != proceed {
		return res
	}

	return w.expand(hasWildcard)
}

// visit classifies c and appends it to the live path unless it closes a cycle.
// The returned path is the branch result for every verdict except proceed.
func (w *walker) visit(c grid.Coordinate) (verdict, *route.Path) {
	w.stats.Nodes++

	// 1. Cycle: the grid is undirected, so every step could lead straight back.
	if w.live.Contains(c) || !w.live.TryAppend(c) {
		w.stats.DeadEnds++
		return cycle, w.best
	}
	w.current = c

	// 2. End reached: hand back an owned copy, the live path keeps changing.
	if c == w.end {
		w.stats.Candidates++
		return complete, w.live.Snapshot()
	}

	// 3. Prune: no completion of a path this long can beat the incumbent.
	if w.live.Distance() >= w.bound() {
		w.stats.Prunes++
		return pruned, w.best
	}

	return proceed, nil
}

// leave undoes a successful visit of c.
func (w *walker) leave(c, prev grid.Coordinate) {
	w.live.RemoveLast(c)
	w.current = prev
}

// expand explores the neighbors of the current pillar: wildcard steps first
// (when still available), then layout steps.
func (w *walker) expand(hasWildcard bool) *route.Path {
	if hasWildcard {
		if res := w.explore(true, false); res.HasDistance(w.lowerBound) {
			return res
		}
	}
	if res := w.explore(false, hasWildcard); res.HasDistance(w.lowerBound) {
		return res
	}

	return w.best
}

// explore recurses into every neighbor of the current pillar whose plank is
// absent from the layout (usePlank) or present in it (!usePlank).
// wildcardAfter is the wildcard availability handed to each child.
func (w *walker) explore(usePlank, wildcardAfter bool) *route.Path {
	from := w.current
	for _, p := range grid.Neighbors(from, w.maxCoordinate) {
		if w.err != nil {
			break
		}
		if w.layout.Connected(from, p) == usePlank {
			continue
		}

		res := w.step(from, p, usePlank, wildcardAfter)
		if res.HasDistance(w.lowerBound) {
			w.record(res)
			w.stats.ShortCircuit = true
			w.budget.optimal.Store(true)
			return res
		}
		if res.IsShorterThan(w.best) {
			w.record(res)
		}
	}

	return w.best
}

// step crosses from→p, marking the plank as the extra one when usePlank.
func (w *walker) step(from, p grid.Coordinate, usePlank, wildcardAfter bool) *route.Path {
	if usePlank {
		w.live.SetExtraEdge(grid.NewEdge(from, p))
		defer w.live.ClearExtraEdge()
	}

	return w.search(p, wildcardAfter)
}

// record installs res as the incumbent. res must be a snapshot or the
// current incumbent itself.
func (w *walker) record(res *route.Path) {
	if res == w.best {
		return
	}
	if res.IsShorterThan(w.best) {
		w.stats.Improvements++
	}
	w.best = res
	w.budget.offer(res.Distance())
}

// bound is the distance a live path must stay strictly below to be worth
// extending: the smaller of the local and the shared incumbent.
func (w *walker) bound() int {
	return min(w.best.Distance(), w.budget.bound())
}
