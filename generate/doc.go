// Package generate builds plank layouts for tests, benchmarks and the CLI.
//
// What:
//
//   - Complete(n): every plank of the n×n grid.
//   - Random(n, density): a uniformly random subset of the grid's planks.
//   - Staircase(n, density): a random monotone path from (0,0) to (n−1,n−1),
//     optionally with one plank withheld (WithGap), plus random extra planks.
//     The planted path is returned, so callers know an optimal answer: its
//     length equals the Manhattan lower bound.
//
// Determinism:
//
//   - Planks are enumerated row-major, right neighbor before bottom neighbor.
//   - All randomness comes from the *rand.Rand supplied via WithSeed/WithRand;
//     the same seed always yields the same layout.
//
// Errors:
//
//   - grid.ErrOutOfRange:  n < 1.
//   - ErrInvalidDensity:   density outside [0,1] or NaN.
//   - ErrNeedRandSource:   a random builder was called without WithSeed/WithRand.
package generate
