// Package region partitions a grid of category values into maximal
// 4-connected regions and prices the fence around each one.
//
// What:
//
//   - Label assigns every cell a region ID in one raster scan: a cell
//     inherits the ID of its upper or left neighbor when the category
//     matches, otherwise it gets a fresh ID. When both neighbors match but
//     carry different IDs the two regions are merged.
//   - Trace measures each region: Area (cells), Perimeter (boundary edges)
//     and Sides (boundary edges after collapsing straight runs).
//   - Survey sums Area×Perimeter and Area×Sides over all regions.
//
// Merge strategies:
//
//   - UnionFind (default): provisional IDs are joined in a disjoint-set with
//     path compression; labels are resolved once after the scan.
//   - Relabel: every merge rescans the grid and rewrites the larger ID.
//   - FloodFill: breadth-first flood from each unlabeled cell. No merges at
//     all; kept as an independent cross-check.
//
// All three keep the smaller ID on merge, so UnionFind and Relabel produce
// identical label maps. IDs are never reused: after merges some values in
// [0, N) are unoccupied, so count regions with LabelMap.Len, not the
// highest ID.
//
// Complexity:
//
//   - UnionFind: O(W×H×α(W×H)) time, O(W×H) memory.
//   - Relabel:   O(W×H×M) time for M merges, O(W×H) memory.
//   - FloodFill: O(W×H) time and memory.
//   - Trace:     O(W×H) after labeling.
package region
