// Package pathfinder answers fewest-step questions on an elevation grid by
// fixing a seed set and delegating to one multi-source bfs.Search loop.
//
// Two call conventions share that loop:
//
//   - SingleOrigin: seeds = {recorded start}
//   - MultiOrigin:  seeds = every cell at the grid's minimum elevation
//
// Origins is the only place the modes differ; FindDistance accepts any seed set.
//
// Usage
//
//	gg, err := gridgraph.Parse(lines)
//	steps, err := pathfinder.Shortest(gg, pathfinder.SingleOrigin)
//	best, err := pathfinder.Shortest(gg, pathfinder.MultiOrigin)
//
// Errors
//
//   - ErrGraphNil            if the grid pointer is nil.
//   - ErrUnknownMode         for modes other than SingleOrigin / MultiOrigin.
//   - ErrUnreachableTarget   if no origin reaches the target (== bfs.ErrUnreachable).
//   - gridgraph.ErrOutOfBounds for origins or a target outside the grid.
//   - bfs option and context errors passed through unchanged.
package pathfinder
