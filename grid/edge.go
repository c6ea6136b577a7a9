package grid

import "fmt"

// Edge is an unordered pair of Coordinates: a plank between two pillars.
//
// Endpoints are stored in canonical row-major order, which makes Edge(a,b)
// and Edge(b,a) identical values. Construct Edges with NewEdge; a composite
// literal bypasses canonicalization.
type Edge struct {
	a, b Coordinate
}

// NewEdge returns the plank joining a and b. Adjacency is not enforced here;
// use IsUnit or Layout.Validate when it matters.
func NewEdge(a, b Coordinate) Edge {
	if less(b, a) {
		a, b = b, a
	}

	return Edge{a: a, b: b}
}

// A returns the lower endpoint in row-major order.
func (e Edge) A() Coordinate { return e.a }

// B returns the higher endpoint in row-major order.
func (e Edge) B() Coordinate { return e.b }

// Endpoints returns both endpoints, lower first.
func (e Edge) Endpoints() (Coordinate, Coordinate) { return e.a, e.b }

// Has reports whether c is one of the endpoints.
func (e Edge) Has(c Coordinate) bool { return e.a == c || e.b == c }

// IsUnit reports whether the endpoints are grid-adjacent.
func (e Edge) IsUnit() bool { return e.a.IsAdjacentTo(e.b) }

// Equal reports whether e and o join the same pair of pillars, regardless of
// the order in which either was constructed.
func (e Edge) Equal(o Edge) bool {
	return NewEdge(e.a, e.b) == NewEdge(o.a, o.b)
}

// String renders e as "[(x,y)(x,y)]".
func (e Edge) String() string {
	return fmt.Sprintf("[%s%s]", e.a, e.b)
}
