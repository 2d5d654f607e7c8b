// Package gridgraph treats a rectangular field of elevation letters as a
// directed graph, enabling step-constrained shortest-path searches.
//
// What:
//
//   - Parse/Read turn text rows ('a'..'z' plus one 'S' and one 'E') into an
//     immutable GridGraph, recording the start and end markers and storing them
//     at the elevations of 'a' and 'z'.
//   - NewGridGraph builds the same structure from numeric elevations.
//   - Neighbors enumerates the legal moves from a cell: up, left, down, right,
//     never leaving the grid, climbing at most MaxClimb, descending freely.
//   - Lowest lists every cell at the grid's minimum elevation (trailheads).
//
// Why:
//
//   - Hill climbing: fewest steps from a start (or from any trailhead) to a summit.
//   - Terrain reachability: which cells can be reached without steep ascents.
//
// Complexity:
//
//   - Parse, NewGridGraph:   O(R×C) time and memory.
//   - Neighbors, CanStep, At: O(1).
//   - MinElevation, Lowest:   O(R×C).
//
// Errors (all wrap ErrMalformedGrid):
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a character outside 'a'..'z', 'S', 'E'.
//   - ErrDuplicateMarker: more than one 'S' or 'E'.
//   - ErrNoStart, ErrNoEnd: a marker is missing.
//   - ErrOutOfBounds: NewGridGraph start or end outside the grid.
package gridgraph
