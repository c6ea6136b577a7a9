// Package layoutio reads and writes plank mazes and search results as YAML.
//
// A maze document:
//
//	size: 3
//	start: [0, 0]
//	end: [2, 2]
//	planks:
//	  - [[0, 0], [1, 0]]
//	  - [[1, 0], [1, 1]]
//
// Pillars are [x, y] pairs; planks are pairs of pillars in either order.
// start and end are required. Unknown keys are rejected.
//
// A result document records the outcome of one search: whether the end was
// reached, the distance, the pillars in order and the extra plank, if any.
//
// Errors:
//
//   - ErrMalformed:      the YAML cannot be decoded into the document shape.
//   - grid.ErrNilInput:  start, end or a plank endpoint is missing.
//   - grid.ErrOutOfRange: size < 1, a pillar off the grid, or a plank that does
//     not join adjacent pillars.
package layoutio
