package layoutio

import (
	"io"

	"github.com/katalvlaran/plankpath/route"
)

// Result is the document form of one finished search.
type Result struct {
	Size       int     `yaml:"size"`
	Start      Point   `yaml:"start"`
	End        Point   `yaml:"end"`
	Wildcard   bool    `yaml:"wildcard"`
	Reachable  bool    `yaml:"reachable"`
	Distance   *int    `yaml:"distance,omitempty"`
	Path       []Point `yaml:"path,omitempty"`
	ExtraPlank *Plank  `yaml:"extra_plank,omitempty"`
	Nodes      int64   `yaml:"nodes,omitempty"`
	Error      string  `yaml:"error,omitempty"`
	RunID      string  `yaml:"run_id,omitempty"`
}

// NewResult records path as the outcome of a search on m. An infinite path
// is written as reachable: false with no distance.
func NewResult(m *Maze, wildcard bool, path *route.Path) *Result {
	r := &Result{Size: m.Size, Wildcard: wildcard}
	if m.Start != nil {
		r.Start = *m.Start
	}
	if m.End != nil {
		r.End = *m.End
	}
	if path == nil || path.IsInfinite() || path.IsEmpty() {
		return r
	}

	r.Reachable = true
	d := path.Distance()
	r.Distance = &d
	for _, c := range path.Coordinates() {
		r.Path = append(r.Path, *PointOf(c))
	}
	if e, ok := path.ExtraEdge(); ok {
		pl := PlankOf(e)
		r.ExtraPlank = &pl
	}

	return r
}

// Encode writes r to w as YAML.
func (r *Result) Encode(w io.Writer) error {
	return encode(w, r)
}

// SaveResult writes r to path, replacing any existing file.
func SaveResult(path string, r *Result) error {
	return save(path, r)
}
