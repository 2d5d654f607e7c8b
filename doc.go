// Package hillclimb is a fewest-steps engine for letter heightmaps: a
// rectangular field of elevations 'a'..'z' where a walker may descend any
// amount but climb at most one level per step.
//
// 🚀 What is inside?
//
//   - gridgraph/: parse text rows into an immutable elevation grid, record the
//     'S' start and 'E' summit, enumerate legal moves (the step rule)
//   - bfs/: generic multi-source breadth-first search with lazy duplicate
//     suppression, hooks, depth limit and cancellation
//   - pathfinder/: seed the search from the start (part 1) or from every lowest
//     cell (part 2) and report the distance to the summit
//   - cmd/hillclimb: thin CLI: flags, YAML/env config, text or table output
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// takes 31 steps from 'S' and 29 steps from the best 'a'.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
