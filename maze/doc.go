// Package maze finds every minimum-cost route through a walled maze where
// stepping forward is cheap and changing heading is expensive.
//
// Cost model
//
//   - A move in the current heading costs StepCost (1).
//   - A move in either perpendicular heading costs StepCost+TurnCost (1001).
//     The turn is part of the move, never a separate step.
//   - Reversing is never attempted.
//
// Search (wavefront)
//
//	Search keeps a set of partial paths and grows all of them one cell per
//	round. Each path tries its current heading and both perpendicular
//	headings; the first success extends the path in place and every further
//	success forks a copy. A candidate is abandoned when the target cell is a
//	wall or off the map, already lies on the same path, or the pruning policy
//	says another path reached it more cheaply. Paths reaching the end stop
//	growing. Rounds continue until no path grows.
//
//	Pruning policies:
//	  - PruneState (default): keep the best cost per (cell, heading); drop
//	    candidates strictly worse, keep ties. Paths already costlier than the
//	    cheapest completed path also stop.
//	  - PruneCellOffset: keep the lowest cost per cell and drop a candidate
//	    only when it exceeds that cost by more than TurnCost. Heuristic;
//	    offered for comparison, not guaranteed optimal.
//
// Reference (Dijkstra)
//
//	Dijkstra runs a label-correcting search over (cell, heading) states with
//	a lazy min-heap and remembers every equally-cheap predecessor, then walks
//	those links back from the end to collect the optimal tiles.
//
// Both return a Result with the minimum cost and the set of tiles lying on
// at least one minimum-cost route.
//
// Errors
//
//   - ErrUnknownTile  maze text holds a rune other than '#', '.', 'S', 'E'.
//   - ErrNoRoute      the end cannot be reached.
//   - grid.ErrMarkerNotFound / grid.ErrMarkerNotUnique for missing or
//     repeated S/E markers.
package maze
