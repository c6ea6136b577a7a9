// Package grid models the pillar grid that plankpath searches over:
// coordinates ("pillars"), unordered unit edges ("planks") and the layout,
// the set of planks that may be crossed without spending the wildcard.
//
// What:
//
//   - Coordinate: an immutable (X,Y) cell with bounds validation against an
//     explicit maxCoordinate (every cell satisfies 0 ≤ X,Y ≤ maxCoordinate).
//   - Edge: an unordered pair of Coordinates; Edge(a,b) == Edge(b,a), so edges
//     can be compared with == and used directly as map keys.
//   - Layout: a set of Edges with O(1) membership, safe for concurrent readers.
//
// Why:
//
//   - The bound is threaded through every call instead of living in a
//     package-level variable, so two mazes of different sizes never leak
//     configuration into each other's validation.
//   - Neighbor order is fixed (+X, +Y, −X, −Y). Searches that break ties by
//     exploration order therefore return reproducible paths.
//
// Complexity:
//
//   - Neighbors, ManhattanDistance, IsAdjacentTo: O(1).
//   - Layout.Contains / Connected: O(1) expected.
//   - Layout.Edges: O(E log E) (sorted for determinism).
//
// Errors:
//
//   - ErrOutOfRange: a coordinate or size lies outside the permitted range.
//   - ErrNilInput:   a required argument (layout, path, endpoint) is absent.
package grid
