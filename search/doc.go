// Package search finds the shortest pillar-to-pillar path through a plank
// layout when at most one missing plank may be bridged with a wildcard.
//
// What:
//
//   - Engine: holds the layout, start and end pillars, the Manhattan lower
//     bound, one live route.Path and the best path found so far.
//   - ShortestPath: the exact branch-and-bound depth-first search.
//   - Search: the same search under a budget (context, node cap, time limit),
//     optionally split across worker goroutines.
//
// Algorithm:
//
//  1. Visit a pillar: a pillar already on the live path is a dead end; the end
//     pillar completes a candidate; a live path that is not strictly shorter
//     than the incumbent is pruned.
//  2. Otherwise branch, in grid.Neighbors order: first across planks missing
//     from the layout (spending the wildcard, if still available), then across
//     planks in the layout (keeping the wildcard for later).
//  3. After each child: a result of exactly LowerBound planks is optimal and
//     is returned at once; a strictly shorter result is snapshotted as the new
//     incumbent; then the step is undone.
//
// The Manhattan distance between start and end bounds every path from below
// on a 4-connected grid. That short-circuit is what keeps the otherwise
// exponential enumeration of simple paths tractable on typical layouts.
//
// Complexity:
//
//   - Worst case exponential in the number of pillars (simple-path search).
//   - Memory: O(n²) for the live path plus one snapshot per improvement.
//
// Concurrency:
//
//   - An Engine is not safe for concurrent use; it owns one live path.
//   - A grid.Layout may be shared by any number of engines.
//   - Search with WithWorkers(k>1) splits the root branches across k goroutines
//     that share an atomically updated incumbent distance; the first branch to
//     reach the lower bound stops the others. Parallel runs return an optimal
//     distance, but among equal-length paths the one returned may vary.
//
// Errors:
//
//   - grid.ErrOutOfRange: grid size < 1, or start/end outside the grid.
//   - grid.ErrNilInput:   nil layout.
//   - ErrNodeLimit, ErrTimeLimit, context errors: Search budget exhausted; the
//     best path found so far is returned alongside the error.
package search
