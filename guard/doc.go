// Package guard simulates a patrolling guard on a grid: walk forward, turn
// right when blocked, stop when leaving the grid or when a loop is detected.
//
// What
//
//   - Simulator steps one agent over a Grid[Cell]. Each Cell carries an
//     obstacle flag and one visit counter per heading.
//   - Tick advances one step and reports the resulting State:
//     Moving, Rotating, OutOfBounds or Looping.
//   - A loop is re-entering a cell with a heading already recorded there, or
//     rotating four times in a row without moving (the guard is boxed in).
//   - Reset restores the start state between trials without reallocating:
//     only the cells touched by the previous run are cleared.
//   - Patrol runs a fresh simulation and counts distinct visited tiles.
//   - FindLoopObstacles tries one extra obstacle at a time and returns every
//     placement that traps the guard in a loop.
//
// Tiles
//
//	'.'  empty floor
//	'#'  obstacle
//	'^' '>' 'v' '<'  guard start, facing up/right/down/left (exactly one)
//
// Termination
//
//	Every run is bounded: the guard either leaves the grid or repeats a
//	(cell, heading) pair within W×H×4 moves.
//
// Concurrency
//
//	A Simulator is not safe for concurrent use. FindLoopObstacles with
//	WithWorkers(n>1) gives each worker its own Clone and merges the results.
//
// Errors
//
//   - ErrUnknownTile     input contains a rune outside the tile set.
//   - ErrNoGuard         no start marker present.
//   - ErrMultipleGuards  more than one start marker present.
//   - ErrOptionViolation invalid option (e.g. negative worker count).
//   - context errors from FindLoopObstacles when the context is cancelled.
package guard
