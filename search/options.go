package search

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/plankpath/grid"
)

// Option configures an Engine. Use with NewEngine(n, layout, opts...).
// Option constructors panic on meaningless values; NewEngine and the search
// itself never panic.
type Option func(*Options)

// Options holds the tunables of an Engine.
type Options struct {
	// Start is the first pillar. Default (0,0).
	Start grid.Coordinate

	// End is the target pillar. Default (n−1, n−1) unless endSet.
	End    grid.Coordinate
	endSet bool

	// Workers is the number of goroutines Search may use. Default 1.
	// ShortestPath is always sequential.
	Workers int

	// MaxNodes caps the pillar visits of one Search call. 0 means no cap.
	MaxNodes int64

	// TimeLimit caps the wall-clock time of one Search call. 0 means no limit.
	TimeLimit time.Duration

	// Logger receives debug records about finished searches.
	Logger *slog.Logger

	// Metrics, if non-nil, observes every finished search.
	Metrics *Metrics
}

// DefaultOptions returns Options with a (0,0) start, the far corner as end,
// one worker, no budget, a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
}

// WithStart sets the start pillar.
func WithStart(c grid.Coordinate) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithEnd sets the end pillar.
func WithEnd(c grid.Coordinate) Option {
	return func(o *Options) {
		o.End = c
		o.endSet = true
	}
}

// WithWorkers sets how many goroutines Search may use. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("search: WithWorkers(n < 1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxNodes caps the number of pillar visits per Search. Panics if n < 0.
func WithMaxNodes(n int64) Option {
	if n < 0 {
		panic("search: WithMaxNodes(n < 0)")
	}
	return func(o *Options) {
		o.MaxNodes = n
	}
}

// WithTimeLimit caps the duration of each Search. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("search: WithTimeLimit(d < 0)")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithLogger installs a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics installs prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
