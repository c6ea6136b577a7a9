package search

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/plankpath/route"
)

// checkMask sets how often a walker polls the context and the clock:
// every 1024 pillar visits, which keeps the overhead negligible.
const checkMask = 1023

// budget is shared by every walker of one search call. Only the atomic fields
// are written after construction.
type budget struct {
	ctx         context.Context
	maxNodes    int64
	useDeadline bool
	deadline    time.Time

	nodes     atomic.Int64 // pillar visits across all walkers
	optimal   atomic.Bool  // some walker reached the lower bound
	incumbent atomic.Int64 // best distance seen by any walker
}

// newBudget returns a budget with no incumbent. A nil ctx means no cancellation.
func newBudget(ctx context.Context, maxNodes int64, limit time.Duration) *budget {
	if ctx == nil {
		ctx = context.Background()
	}
	b := &budget{ctx: ctx, maxNodes: maxNodes}
	if limit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(limit)
	}
	b.incumbent.Store(int64(route.Infinite))

	return b
}

// unbounded returns the budget used by ShortestPath.
func unbounded() *budget {
	return newBudget(context.Background(), 0, 0)
}

// charge counts one visit and reports why the search must stop, if it must.
func (b *budget) charge() error {
	n := b.nodes.Add(1)
	if b.optimal.Load() {
		return errOptimalFound
	}
	if b.maxNodes > 0 && n > b.maxNodes {
		return ErrNodeLimit
	}
	if n&checkMask != 0 {
		return nil
	}
	if err := b.ctx.Err(); err != nil {
		return err
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// offer lowers the shared incumbent to d if d is smaller.
func (b *budget) offer(d int) {
	for {
		cur := b.incumbent.Load()
		if int64(d) >= cur || b.incumbent.CompareAndSwap(cur, int64(d)) {
			return
		}
	}
}

// bound returns the shared incumbent distance.
func (b *budget) bound() int {
	v := b.incumbent.Load()
	if v > int64(math.MaxInt) {
		return math.MaxInt
	}

	return int(v)
}
