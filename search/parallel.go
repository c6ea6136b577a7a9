package search

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/plankpath/grid"
	"github.com/katalvlaran/plankpath/route"
)

const (
	// branchesPerWorker is the frontier size, per worker, at which splitting stops.
	branchesPerWorker = 4
	// maxSplitDepth bounds how many plank steps the frontier is expanded.
	maxSplitDepth = 12
)

// branch is a root prefix handed to one walker.
type branch struct {
	prefix      *route.Path // starts at start, already holds any wildcard step
	hasWildcard bool
}

// searchParallel expands the root breadth-first into a frontier of prefixes,
// then explores each prefix depth-first on its own goroutine. Walkers share
// the budget, so an improvement found by one tightens pruning for all, and the
// first lower-bound hit stops the rest.
func (e *Engine) searchParallel(b *budget, hasWildcard bool) (*route.Path, Stats, error) {
	var st Stats

	// 1. Breadth-first split. Expansion is exhaustive level by level, so the
	//    first level that reaches the end holds an optimal path.
	frontier, done := e.split(hasWildcard)
	if done != nil {
		st.Candidates = 1
		st.ShortCircuit = done.HasDistance(e.lowerBound)
		return done, st, nil
	}
	if len(frontier) == 0 {
		return route.NewInfinite(), st, nil
	}

	// 2. Fan out, bounded by the worker count.
	g, gctx := errgroup.WithContext(b.ctx)
	g.SetLimit(e.opts.Workers)
	shared := b.withContext(gctx)

	results := make([]*route.Path, len(frontier))
	stats := make([]Stats, len(frontier))
	for i, br := range frontier {
		i, br := i, br
		g.Go(func() error {
			res, s, err := e.runBranch(shared, br)
			results[i], stats[i] = res, s
			if errors.Is(err, errOptimalFound) {
				return nil
			}

			return err
		})
	}
	err := g.Wait()

	// 3. Merge in frontier order: the first shortest result wins ties.
	best := route.NewInfinite()
	for i, res := range results {
		st.add(stats[i])
		if res != nil && res.IsShorterThan(best) {
			best = res
		}
	}
	if best.HasDistance(e.lowerBound) {
		// Siblings stopped on our signal; nothing was lost.
		err = nil
	}

	return best, st, err
}

// runBranch explores one prefix with a private live path.
func (e *Engine) runBranch(b *budget, br branch) (*route.Path, Stats, error) {
	last, _ := br.prefix.Last()
	live := br.prefix.Snapshot()
	live.RemoveLast(last)
	prev, _ := live.Last()

	w := &walker{
		layout:        e.layout,
		maxCoordinate: e.maxCoordinate,
		end:           e.end,
		lowerBound:    e.lowerBound,
		current:       prev,
		live:          live,
		best:          route.NewInfinite(),
		budget:        b,
	}
	res := w.search(last, br.hasWildcard)
	if res != w.best && res.IsShorterThan(w.best) {
		w.record(res)
	}

	return w.best, w.stats, w.err
}

// split grows the frontier until it holds enough branches for the workers.
// It returns either the frontier or, when the end was reached while
// splitting, the first optimal path found.
func (e *Engine) split(hasWildcard bool) ([]branch, *route.Path) {
	root := route.New()
	root.TryAppend(e.start)
	if e.start == e.end {
		return nil, root
	}

	frontier := []branch{{prefix: root, hasWildcard: hasWildcard}}
	target := e.opts.Workers * branchesPerWorker
	for depth := 0; depth < maxSplitDepth && len(frontier) < target; depth++ {
		var next []branch
		for _, br := range frontier {
			children, done := e.children(br)
			if done != nil {
				return nil, done
			}
			next = append(next, children...)
		}
		if len(next) == 0 {
			return nil, nil
		}
		frontier = next
	}

	return frontier, nil
}

// children extends br by one plank, wildcard steps first, in neighbor order.
func (e *Engine) children(br branch) ([]branch, *route.Path) {
	from, _ := br.prefix.Last()
	var out []branch
	modes := []bool{false}
	if br.hasWildcard {
		modes = []bool{true, false}
	}
	for _, usePlank := range modes {
		for _, p := range grid.Neighbors(from, e.maxCoordinate) {
			if br.prefix.Contains(p) || e.layout.Connected(from, p) == usePlank {
				continue
			}
			child := br.prefix.Snapshot()
			child.TryAppend(p)
			if usePlank {
				child.SetExtraEdge(grid.NewEdge(from, p))
			}
			if p == e.end {
				return nil, child
			}
			out = append(out, branch{prefix: child, hasWildcard: br.hasWildcard && !usePlank})
		}
	}

	return out, nil
}

// withContext returns a budget that shares b's limits and counters' starting
// point but observes ctx for cancellation.
func (b *budget) withContext(ctx context.Context) *budget {
	nb := &budget{
		ctx:         ctx,
		maxNodes:    b.maxNodes,
		useDeadline: b.useDeadline,
		deadline:    b.deadline,
	}
	nb.incumbent.Store(b.incumbent.Load())

	return nb
}
