package grid

import "fmt"

// Coordinate is a pillar position on the grid. The zero value is (0,0).
// Coordinates are plain values: comparable with == and usable as map keys.
type Coordinate struct {
	X, Y int
}

// conn4 lists the orthogonal offsets in exploration order: +X, +Y, −X, −Y.
var conn4 = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// NewCoordinate returns the Coordinate (x,y) after validating it against
// maxCoordinate. Returns ErrOutOfRange if either component is negative or
// exceeds maxCoordinate.
func NewCoordinate(x, y, maxCoordinate int) (Coordinate, error) {
	c := Coordinate{X: x, Y: y}
	if err := c.Validate(maxCoordinate); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate reports ErrOutOfRange when c lies outside [0,maxCoordinate]².
// A negative maxCoordinate admits no cell at all.
// Complexity: O(1).
func (c Coordinate) Validate(maxCoordinate int) error {
	if maxCoordinate < 0 {
		return fmt.Errorf("grid: maxCoordinate %d is negative: %w", maxCoordinate, ErrOutOfRange)
	}
	if c.X < 0 || c.Y < 0 || c.X > maxCoordinate || c.Y > maxCoordinate {
		return fmt.Errorf("grid: coordinate %s outside [0,%d]: %w", c, maxCoordinate, ErrOutOfRange)
	}

	return nil
}

// InBounds reports whether c lies inside [0,maxCoordinate]².
func (c Coordinate) InBounds(maxCoordinate int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X <= maxCoordinate && c.Y <= maxCoordinate
}

// DistanceTo returns the Manhattan distance from c to o.
func (c Coordinate) DistanceTo(o Coordinate) int {
	return ManhattanDistance(c, o)
}

// IsAdjacentTo reports whether o is one orthogonal step away from c.
func (c Coordinate) IsAdjacentTo(o Coordinate) bool {
	return ManhattanDistance(c, o) == 1
}

// String renders c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ManhattanDistance returns |a.X−b.X| + |a.Y−b.Y|. On a 4-connected grid this
// is the length of every monotone path between a and b and a lower bound on
// the length of any path.
// Complexity: O(1).
func ManhattanDistance(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Neighbors returns the grid-adjacent cells of c that lie inside
// [0,maxCoordinate]², in the fixed order +X, +Y, −X, −Y.
// Complexity: O(1); allocates a slice of at most four elements.
func Neighbors(c Coordinate, maxCoordinate int) []Coordinate {
	out := make([]Coordinate, 0, len(conn4))
	for _, d := range conn4 {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if !n.InBounds(maxCoordinate) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// less orders coordinates row-major (Y first, then X).
func less(a, b Coordinate) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
