package route

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/plankpath/grid"
)

// Infinite is the distance of a path that represents "no path known".
// It is larger than any real path length.
const Infinite = math.MaxInt

// emptyDistance is the distance of a path with no pillars.
const emptyDistance = -1

// ErrInvalidPath indicates that a path violates an adjacency, acyclicity,
// endpoint or wildcard invariant.
var ErrInvalidPath = errors.New("route: invalid path")

// Path is an ordered sequence of distinct pillars with its distance and an
// optional extra plank.
//
// visited mirrors sequence for O(1) containment. extra, when set, names the
// one step of sequence that may be absent from the layout.
// A Path is not safe for concurrent mutation.
type Path struct {
	sequence []grid.Coordinate
	visited  map[grid.Coordinate]struct{}
	distance int
	extra    *grid.Edge
}

// New returns an empty Path with distance −1.
func New() *Path {
	return &Path{
		visited:  make(map[grid.Coordinate]struct{}),
		distance: emptyDistance,
	}
}

// NewInfinite returns an empty Path carrying the Infinite sentinel.
func NewInfinite() *Path {
	p := New()
	p.SetInfiniteIfEmpty()

	return p
}

// TryAppend pushes c and reports whether it was accepted. The push is
// accepted when the path is empty, or when c is adjacent to the last pillar
// and not already on the path. A rejected push changes nothing.
//
// Appending to an empty path that carries the Infinite sentinel starts a
// real path of distance 0.
func (p *Path) TryAppend(c grid.Coordinate) bool {
	if len(p.sequence) == 0 {
		p.sequence = append(p.sequence, c)
		p.visited[c] = struct{}{}
		p.distance = 0

		return true
	}
	if _, seen := p.visited[c]; seen {
		return false
	}
	if !c.IsAdjacentTo(p.sequence[len(p.sequence)-1]) {
		return false
	}
	p.sequence = append(p.sequence, c)
	p.visited[c] = struct{}{}
	p.distance++

	return true
}

// RemoveLast pops the final pillar if and only if it equals expected, and
// reports whether it did.
func (p *Path) RemoveLast(expected grid.Coordinate) bool {
	last, ok := p.Last()
	if !ok || last != expected {
		return false
	}
	p.sequence = p.sequence[:len(p.sequence)-1]
	delete(p.visited, last)
	p.distance--

	return true
}

// Last returns the final pillar, or false when the path is empty.
func (p *Path) Last() (grid.Coordinate, bool) {
	if len(p.sequence) == 0 {
		return grid.Coordinate{}, false
	}

	return p.sequence[len(p.sequence)-1], true
}

// SetExtraEdge records e as the plank crossed with the wildcard. Any earlier
// record is replaced; a path carries at most one extra plank.
func (p *Path) SetExtraEdge(e grid.Edge) {
	p.extra = &e
}

// ClearExtraEdge drops the extra plank record.
func (p *Path) ClearExtraEdge() {
	p.extra = nil
}

// ExtraEdge returns the extra plank and whether one is set.
func (p *Path) ExtraEdge() (grid.Edge, bool) {
	if p.extra == nil {
		return grid.Edge{}, false
	}

	return *p.extra, true
}

// Distance returns the number of planks on the path, −1 for an empty path, or
// Infinite for the "no path" sentinel.
func (p *Path) Distance() int { return p.distance }

// Len returns the number of pillars on the path.
func (p *Path) Len() int { return len(p.sequence) }

// IsEmpty reports whether the path holds no pillars.
func (p *Path) IsEmpty() bool { return len(p.sequence) == 0 }

// IsInfinite reports whether p carries the Infinite sentinel.
func (p *Path) IsInfinite() bool { return p.distance == Infinite }

// Contains reports whether c is on the path.
func (p *Path) Contains(c grid.Coordinate) bool {
	_, ok := p.visited[c]

	return ok
}

// Coordinates returns a copy of the pillar sequence.
func (p *Path) Coordinates() []grid.Coordinate {
	out := make([]grid.Coordinate, len(p.sequence))
	copy(out, p.sequence)

	return out
}

// SetInfiniteIfEmpty sets the distance to Infinite when the path is empty and
// reports whether it did. Non-empty paths are never marked infinite.
func (p *Path) SetInfiniteIfEmpty() bool {
	if len(p.sequence) != 0 {
		return false
	}
	p.distance = Infinite

	return true
}

// IsShorterThan reports whether p is strictly shorter than o.
// A nil o is treated as Infinite.
func (p *Path) IsShorterThan(o *Path) bool {
	if o == nil {
		return p.distance < Infinite
	}

	return p.distance < o.distance
}

// IsShorterThanDistance reports whether p is strictly shorter than d.
func (p *Path) IsShorterThanDistance(d int) bool { return p.distance < d }

// HasSameDistance reports whether p and o have equal distances.
// A nil o never matches.
func (p *Path) HasSameDistance(o *Path) bool {
	return o != nil && p.distance == o.distance
}

// HasDistance reports whether p has distance d.
func (p *Path) HasDistance(d int) bool { return p.distance == d }

// Snapshot returns a deep copy of p. Later mutation of either path does not
// affect the other.
// Complexity: O(len).
func (p *Path) Snapshot() *Path {
	cp := &Path{
		sequence: make([]grid.Coordinate, len(p.sequence)),
		visited:  make(map[grid.Coordinate]struct{}, len(p.visited)),
		distance: p.distance,
	}
	copy(cp.sequence, p.sequence)
	for c := range p.visited {
		cp.visited[c] = struct{}{}
	}
	if p.extra != nil {
		e := *p.extra
		cp.extra = &e
	}

	return cp
}

// CopyFrom overwrites p with a deep copy of o. A nil o leaves p unchanged.
func (p *Path) CopyFrom(o *Path) {
	if o == nil || o == p {
		return
	}
	*p = *o.Snapshot()
}

// Reset empties p back to the state returned by New.
func (p *Path) Reset() {
	p.sequence = p.sequence[:0]
	clear(p.visited)
	p.distance = emptyDistance
	p.extra = nil
}

// Equal reports whether p and o have the same distance, the same extra plank
// (both unset counts as equal) and the same pillars in the same order.
func (p *Path) Equal(o *Path) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.distance != o.distance {
		return false
	}
	switch {
	case p.extra == nil && o.extra == nil:
	case p.extra == nil || o.extra == nil:
		return false
	case !p.extra.Equal(*o.extra):
		return false
	}
	if len(p.sequence) != len(o.sequence) {
		return false
	}
	for i := range p.sequence {
		if p.sequence[i] != o.sequence[i] {
			return false
		}
	}

	return true
}

// String renders the pillars joined by " --> ".
func (p *Path) String() string {
	parts := make([]string, len(p.sequence))
	for i, c := range p.sequence {
		parts[i] = c.String()
	}

	return strings.Join(parts, " --> ")
}
