// Package route implements Path, the restartable path builder used by the
// plankpath search: an ordered, cycle-free sequence of pillars, its length in
// planks, and at most one "extra" plank that was crossed with the wildcard.
//
// What:
//
//   - TryAppend / RemoveLast: push and pop used by the depth-first search.
//     Illegal mutations (non-adjacent or repeated pillar, popping something
//     other than the last pillar) are rejected with a false return and leave
//     the path untouched.
//   - Distance bookkeeping: an empty path has distance −1; a path of k pillars
//     has distance k−1. The Infinite sentinel can only be set on an empty path
//     and means "no path known".
//   - Snapshot: a deep copy, taken whenever a live path becomes the incumbent.
//   - Verify: checks a finished path against its layout.
//
// Complexity:
//
//   - TryAppend, RemoveLast, Contains: O(1) expected.
//   - Snapshot, Equal, Verify: O(len).
//
// Errors:
//
//   - ErrInvalidPath: Verify found a broken invariant.
//   - grid.ErrNilInput: a nil *Path or *grid.Layout was supplied where required.
package route
