// Package grid provides the rectangular cell buffer and coordinate arithmetic
// shared by the lvlgrid solvers.
//
// What:
//
//   - Vec/Position: signed integer pair used both as a buffer index and as a
//     free-roaming coordinate that may step outside the grid before a bounds check.
//   - Direction: the four orthogonal headings in clockwise ring order
//     (Up, Right, Down, Left), each with a unit delta.
//   - Grid[T]: an owned row-major buffer with bounds testing, in-place access
//     (Ptr), cloning and row-major index conversion.
//   - ParseRunes: turns a block of text lines into a Grid[rune].
//
// Why:
//
//   - Simulations mutate cells in place and reset them between trials; a flat
//     buffer keeps Clone a single copy and Index/Coordinate O(1).
//   - Searches need to hold positions that are not (yet) inside the grid, so
//     Position carries no reference to the buffer it indexes.
//
// Complexity:
//
//   - InBounds, At, Set, Ptr, Index, Coordinate: O(1).
//   - FromRows, ParseRunes, Clone, Map, FindAll: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMarkerNotFound / ErrMarkerNotUnique: FindOne saw zero or several matches.
//
// Accessors (At, Set, Ptr) panic on an out-of-bounds position: callers are
// expected to test InBounds first, so reaching a missing cell is a bug.
package grid
