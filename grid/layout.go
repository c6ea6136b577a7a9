package grid

import (
	"fmt"
	"sort"
	"sync"
)

// Layout is the set of planks that may be crossed without the wildcard.
//
// All methods are safe for concurrent use: mu guards edges, so a single
// Layout can back several engines searching in parallel. A search never
// mutates its layout.
type Layout struct {
	mu    sync.RWMutex
	edges map[Edge]struct{}
}

// NewLayout returns a Layout holding the given edges. Duplicates, in either
// orientation, collapse into one entry.
// Complexity: O(len(edges)).
func NewLayout(edges ...Edge) *Layout {
	l := &Layout{edges: make(map[Edge]struct{}, len(edges))}
	for _, e := range edges {
		l.edges[NewEdge(e.a, e.b)] = struct{}{}
	}

	return l
}

// Add inserts e and reports whether it was not already present.
func (l *Layout) Add(e Edge) bool {
	e = NewEdge(e.a, e.b)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.edges[e]; ok {
		return false
	}
	l.edges[e] = struct{}{}

	return true
}

// Remove deletes e and reports whether it was present.
func (l *Layout) Remove(e Edge) bool {
	e = NewEdge(e.a, e.b)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.edges[e]; !ok {
		return false
	}
	delete(l.edges, e)

	return true
}

// Contains reports whether e is part of the layout.
// Complexity: O(1) expected.
func (l *Layout) Contains(e Edge) bool {
	e = NewEdge(e.a, e.b)
	l.mu.RLock()
	_, ok := l.edges[e]
	l.mu.RUnlock()

	return ok
}

// Connected reports whether a plank joins a and b.
func (l *Layout) Connected(a, b Coordinate) bool {
	return l.Contains(NewEdge(a, b))
}

// Len returns the number of planks.
func (l *Layout) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.edges)
}

// Edges returns every plank sorted by (A, B) in row-major order.
// Complexity: O(E log E).
func (l *Layout) Edges() []Edge {
	l.mu.RLock()
	out := make([]Edge, 0, len(l.edges))
	for e := range l.edges {
		out = append(out, e)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].a != out[j].a {
			return less(out[i].a, out[j].a)
		}

		return less(out[i].b, out[j].b)
	})

	return out
}

// Clone returns an independent copy of l.
func (l *Layout) Clone() *Layout {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cp := &Layout{edges: make(map[Edge]struct{}, len(l.edges))}
	for e := range l.edges {
		cp.edges[e] = struct{}{}
	}

	return cp
}

// Validate checks that every plank lies inside [0,maxCoordinate]² and joins
// grid-adjacent pillars. The first offending edge is reported, in Edges order.
func (l *Layout) Validate(maxCoordinate int) error {
	for _, e := range l.Edges() {
		if err := e.a.Validate(maxCoordinate); err != nil {
			return fmt.Errorf("grid: plank %s: %w", e, err)
		}
		if err := e.b.Validate(maxCoordinate); err != nil {
			return fmt.Errorf("grid: plank %s: %w", e, err)
		}
		if !e.IsUnit() {
			return fmt.Errorf("grid: plank %s does not join adjacent pillars: %w", e, ErrOutOfRange)
		}
	}

	return nil
}

// AdjoiningNeighbors returns the in-bounds neighbors of c, in Neighbors
// order, whose connecting plank is present in l (usePlank == false) or
// absent from l (usePlank == true, i.e. reachable only with the wildcard).
// Returns ErrNilInput if l is nil and ErrOutOfRange if c is outside the grid.
func AdjoiningNeighbors(l *Layout, c Coordinate, maxCoordinate int, usePlank bool) ([]Coordinate, error) {
	if l == nil {
		return nil, fmt.Errorf("grid: AdjoiningNeighbors: layout: %w", ErrNilInput)
	}
	if err := c.Validate(maxCoordinate); err != nil {
		return nil, err
	}

	all := Neighbors(c, maxCoordinate)
	out := all[:0]
	for _, n := range all {
		// present XOR usePlank: normal moves need the plank, wildcard moves need its absence.
		if l.Connected(c, n) != usePlank {
			out = append(out, n)
		}
	}

	return out, nil
}
