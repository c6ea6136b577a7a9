package layoutio

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/plankpath/grid"
)

// ErrMalformed indicates a document that does not decode into the expected shape.
var ErrMalformed = errors.New("layoutio: malformed document")

// Point is a pillar written as a flow sequence [x, y].
type Point struct {
	X, Y int
}

// PointOf converts a grid coordinate.
func PointOf(c grid.Coordinate) *Point {
	return &Point{X: c.X, Y: c.Y}
}

// Coordinate converts p back to a grid coordinate.
func (p Point) Coordinate() grid.Coordinate {
	return grid.Coordinate{X: p.X, Y: p.Y}
}

// MarshalYAML renders p as [x, y].
func (p Point) MarshalYAML() (any, error) {
	return p.node(), nil
}

// UnmarshalYAML accepts exactly two integers.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var xy []int
	if err := n.Decode(&xy); err != nil {
		return fmt.Errorf("layoutio: line %d: pillar: %w: %w", n.Line, ErrMalformed, err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("layoutio: line %d: pillar has %d values, want [x, y]: %w", n.Line, len(xy), ErrMalformed)
	}
	p.X, p.Y = xy[0], xy[1]

	return nil
}

func (p Point) node() *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.X)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p.Y)},
		},
	}
}

// Plank is a pair of pillars written as [[x, y], [x, y]].
// A null pillar decodes to a nil endpoint.
type Plank struct {
	A, B *Point
}

// PlankOf converts a grid edge.
func PlankOf(e grid.Edge) Plank {
	return Plank{A: PointOf(e.A()), B: PointOf(e.B())}
}

// Edge converts pl to a grid edge. Returns grid.ErrNilInput if an endpoint
// is missing.
func (pl Plank) Edge() (grid.Edge, error) {
	if pl.A == nil || pl.B == nil {
		return grid.Edge{}, fmt.Errorf("layoutio: plank endpoint: %w", grid.ErrNilInput)
	}

	return grid.NewEdge(pl.A.Coordinate(), pl.B.Coordinate()), nil
}

// MarshalYAML renders pl on one line.
func (pl Plank) MarshalYAML() (any, error) {
	if pl.A == nil || pl.B == nil {
		return nil, fmt.Errorf("layoutio: plank endpoint: %w", grid.ErrNilInput)
	}

	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{pl.A.node(), pl.B.node()},
	}, nil
}

// UnmarshalYAML accepts exactly two pillars.
func (pl *Plank) UnmarshalYAML(n *yaml.Node) error {
	var pts []*Point
	if err := n.Decode(&pts); err != nil {
		return fmt.Errorf("layoutio: line %d: plank: %w", n.Line, err)
	}
	if len(pts) != 2 {
		return fmt.Errorf("layoutio: line %d: plank has %d pillars, want 2: %w", n.Line, len(pts), ErrMalformed)
	}
	pl.A, pl.B = pts[0], pts[1]

	return nil
}
