package layoutio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/plankpath/grid"
)

// Maze is the document form of a search problem.
type Maze struct {
	Size   int     `yaml:"size"`
	Start  *Point  `yaml:"start"`
	End    *Point  `yaml:"end"`
	Planks []Plank `yaml:"planks"`
}

// NewMaze describes layout on an n×n grid. Planks are listed in the
// layout's deterministic order.
func NewMaze(n int, layout *grid.Layout, start, end grid.Coordinate) *Maze {
	m := &Maze{Size: n, Start: PointOf(start), End: PointOf(end)}
	if layout == nil {
		return m
	}
	edges := layout.Edges()
	m.Planks = make([]Plank, len(edges))
	for i, e := range edges {
		m.Planks[i] = PlankOf(e)
	}

	return m
}

// Endpoints validates and returns the start and end pillars.
func (m *Maze) Endpoints() (start, end grid.Coordinate, err error) {
	if m.Size < 1 {
		return start, end, fmt.Errorf("layoutio: size %d (must be ≥ 1): %w", m.Size, grid.ErrOutOfRange)
	}
	if m.Start == nil {
		return start, end, fmt.Errorf("layoutio: start: %w", grid.ErrNilInput)
	}
	if m.End == nil {
		return start, end, fmt.Errorf("layoutio: end: %w", grid.ErrNilInput)
	}
	maxCoordinate := m.Size - 1
	if start, err = grid.NewCoordinate(m.Start.X, m.Start.Y, maxCoordinate); err != nil {
		return start, end, fmt.Errorf("layoutio: start: %w", err)
	}
	if end, err = grid.NewCoordinate(m.End.X, m.End.Y, maxCoordinate); err != nil {
		return start, end, fmt.Errorf("layoutio: end: %w", err)
	}

	return start, end, nil
}

// Layout builds and validates the plank layout.
func (m *Maze) Layout() (*grid.Layout, error) {
	if m.Size < 1 {
		return nil, fmt.Errorf("layoutio: size %d (must be ≥ 1): %w", m.Size, grid.ErrOutOfRange)
	}
	layout := grid.NewLayout()
	for i, pl := range m.Planks {
		e, err := pl.Edge()
		if err != nil {
			return nil, fmt.Errorf("layoutio: plank %d: %w", i, err)
		}
		layout.Add(e)
	}
	if err := layout.Validate(m.Size - 1); err != nil {
		return nil, fmt.Errorf("layoutio: %w", err)
	}

	return layout, nil
}

// Validate runs Endpoints and Layout and reports the first error.
func (m *Maze) Validate() error {
	if _, _, err := m.Endpoints(); err != nil {
		return err
	}
	_, err := m.Layout()

	return err
}

// DecodeMaze reads one maze document from r and validates it.
func DecodeMaze(r io.Reader) (*Maze, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Maze
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("layoutio: empty document: %w", ErrMalformed)
		}
		if errors.Is(err, ErrMalformed) || errors.Is(err, grid.ErrNilInput) {
			return nil, err
		}
		return nil, fmt.Errorf("layoutio: decode maze: %w: %w", ErrMalformed, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// LoadMaze reads and validates the maze document at path.
func LoadMaze(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layoutio: open maze: %w", err)
	}
	defer f.Close()

	return DecodeMaze(f)
}

// Encode writes m to w as YAML.
func (m *Maze) Encode(w io.Writer) error {
	return encode(w, m)
}

// SaveMaze writes m to path, replacing any existing file.
func SaveMaze(path string, m *Maze) error {
	return save(path, m)
}

// encode writes v with two-space indentation.
func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("layoutio: encode: %w", err)
	}

	return enc.Close()
}

// save encodes v into the file at path.
func save(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("layoutio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return encode(f, v)
}
