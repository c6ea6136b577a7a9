package route

import (
	"fmt"

	"github.com/katalvlaran/plankpath/grid"
)

// Verify checks a finished, non-sentinel path against layout:
//
//  1. it starts at start and ends at end;
//  2. no pillar repeats;
//  3. every step joins grid-adjacent pillars;
//  4. at most one step is missing from layout, and that step is exactly the
//     recorded extra plank (an extra plank that is actually in the layout, or
//     one that is not a step of the path, is also an error);
//  5. the distance equals the number of steps.
//
// Returns grid.ErrNilInput for a nil path or layout and ErrInvalidPath for any
// broken invariant.
// Complexity: O(len).
func Verify(p *Path, layout *grid.Layout, start, end grid.Coordinate) error {
	// 1. Presence checks.
	if p == nil {
		return fmt.Errorf("route: Verify: path: %w", grid.ErrNilInput)
	}
	if layout == nil {
		return fmt.Errorf("route: Verify: layout: %w", grid.ErrNilInput)
	}
	if p.IsEmpty() {
		return fmt.Errorf("route: empty path: %w", ErrInvalidPath)
	}

	// 2. Endpoints and distance.
	seq := p.sequence
	if seq[0] != start {
		return fmt.Errorf("route: path starts at %s, want %s: %w", seq[0], start, ErrInvalidPath)
	}
	if last := seq[len(seq)-1]; last != end {
		return fmt.Errorf("route: path ends at %s, want %s: %w", last, end, ErrInvalidPath)
	}
	if p.distance != len(seq)-1 {
		return fmt.Errorf("route: distance %d for %d pillars: %w", p.distance, len(seq), ErrInvalidPath)
	}

	// 3. Walk the steps.
	seen := make(map[grid.Coordinate]struct{}, len(seq))
	seen[seq[0]] = struct{}{}
	var missing []grid.Edge
	for i := 1; i < len(seq); i++ {
		prev, cur := seq[i-1], seq[i]
		if _, dup := seen[cur]; dup {
			return fmt.Errorf("route: pillar %s repeats: %w", cur, ErrInvalidPath)
		}
		seen[cur] = struct{}{}
		if !prev.IsAdjacentTo(cur) {
			return fmt.Errorf("route: step %s→%s is not a unit step: %w", prev, cur, ErrInvalidPath)
		}
		if !layout.Connected(prev, cur) {
			missing = append(missing, grid.NewEdge(prev, cur))
		}
	}

	// 4. Wildcard accounting.
	switch {
	case len(missing) > 1:
		return fmt.Errorf("route: %d steps missing from layout: %w", len(missing), ErrInvalidPath)
	case len(missing) == 1:
		if p.extra == nil || !p.extra.Equal(missing[0]) {
			return fmt.Errorf("route: step %s missing from layout is not the extra plank: %w", missing[0], ErrInvalidPath)
		}
	case p.extra != nil:
		return fmt.Errorf("route: extra plank %s is not a wildcard step: %w", *p.extra, ErrInvalidPath)
	}

	return nil
}
