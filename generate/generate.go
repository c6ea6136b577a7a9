package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/plankpath/grid"
	"github.com/katalvlaran/plankpath/route"
)

// Sentinel errors for layout generation.
var (
	// ErrInvalidDensity indicates a density outside [0,1].
	ErrInvalidDensity = errors.New("generate: density out of range")

	// ErrNeedRandSource indicates a random builder was called without an RNG.
	ErrNeedRandSource = errors.New("generate: rng is required")
)

// Option customizes a random builder.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	withGap bool
}

// WithSeed seeds a fresh RNG; the same seed reproduces the same layout.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithGap withholds one plank of the planted staircase from the layout, so
// the staircase is only walkable with the wildcard.
func WithGap() Option {
	return func(c *config) {
		c.withGap = true
	}
}

// Planted is a generated layout with the path planted in it.
type Planted struct {
	// Layout holds the staircase (minus the gap, if any) and the random planks.
	Layout *grid.Layout
	// Path is the planted staircase from (0,0) to (n−1,n−1). When a gap was
	// requested, its ExtraEdge is the withheld plank.
	Path *route.Path
}

// Complete returns the layout holding all 2·n·(n−1) planks of the n×n grid.
func Complete(n int) (*grid.Layout, error) {
	if n < 1 {
		return nil, fmt.Errorf("generate: Complete: n=%d (must be ≥ 1): %w", n, grid.ErrOutOfRange)
	}

	return grid.NewLayout(allPlanks(n)...), nil
}

// Random returns a layout holding ⌊density·2n(n−1)⌋ planks chosen uniformly.
func Random(n int, density float64, opts ...Option) (*grid.Layout, error) {
	cfg, err := resolve("Random", n, density, opts)
	if err != nil {
		return nil, err
	}
	layout := grid.NewLayout()
	fill(layout, n, density, cfg.rng, nil)

	return layout, nil
}

// Staircase plants a random monotone path from (0,0) to (n−1,n−1): each step
// goes +X or +Y with equal probability until one axis is exhausted. With
// WithGap, the plank at step n/2 is left out of the layout. Random planks are
// then added until density of all grid planks is reached; the gap plank is
// never among them.
func Staircase(n int, density float64, opts ...Option) (*Planted, error) {
	cfg, err := resolve("Staircase", n, density, opts)
	if err != nil {
		return nil, err
	}

	// 1. Walk the staircase.
	layout := grid.NewLayout()
	path := route.New()
	last := grid.Coordinate{}
	path.TryAppend(last)
	steps := 2 * (n - 1)
	var gap *grid.Edge
	for i := 0; i < steps; i++ {
		next := last
		switch {
		case last.X < n-1 && last.Y < n-1:
			if cfg.rng.Intn(2) == 0 {
				next.X++
			} else {
				next.Y++
			}
		case last.X < n-1:
			next.X++
		default:
			next.Y++
		}
		plank := grid.NewEdge(last, next)
		if cfg.withGap && i == n/2 {
			gap = &plank
			path.SetExtraEdge(plank)
		} else {
			layout.Add(plank)
		}
		path.TryAppend(next)
		last = next
	}

	// 2. Sprinkle random planks.
	fill(layout, n, density, cfg.rng, gap)

	return &Planted{Layout: layout, Path: path}, nil
}

// resolve validates the common arguments of the random builders.
func resolve(method string, n int, density float64, opts []Option) (config, error) {
	var cfg config
	if n < 1 {
		return cfg, fmt.Errorf("generate: %s: n=%d (must be ≥ 1): %w", method, n, grid.ErrOutOfRange)
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return cfg, fmt.Errorf("generate: %s: density=%v: %w", method, density, ErrInvalidDensity)
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rng == nil {
		return cfg, fmt.Errorf("generate: %s: %w", method, ErrNeedRandSource)
	}

	return cfg, nil
}

// fill adds shuffled planks to layout until it holds ⌊density·total⌋ of them,
// never adding skip.
func fill(layout *grid.Layout, n int, density float64, rng *rand.Rand, skip *grid.Edge) {
	all := allPlanks(n)
	want := int(math.Floor(density * float64(len(all))))
	if want <= layout.Len() {
		return
	}

	candidates := make([]grid.Edge, 0, len(all))
	for _, e := range all {
		if layout.Contains(e) || (skip != nil && e == *skip) {
			continue
		}
		candidates = append(candidates, e)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, e := range candidates {
		if layout.Len() >= want {
			break
		}
		layout.Add(e)
	}
}

// allPlanks lists the grid's planks row-major, right neighbor before bottom.
func allPlanks(n int) []grid.Edge {
	if n < 2 {
		return nil
	}
	out := make([]grid.Edge, 0, 2*n*(n-1))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := grid.Coordinate{X: x, Y: y}
			if x+1 < n {
				out = append(out, grid.NewEdge(c, grid.Coordinate{X: x + 1, Y: y}))
			}
			if y+1 < n {
				out = append(out, grid.NewEdge(c, grid.Coordinate{X: x, Y: y + 1}))
			}
		}
	}

	return out
}
