package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// FindDistance returns the fewest legal steps from any of origins to target on g.
// All origins start at distance 0; an origin equal to target yields 0.
//
// Returns ErrGraphNil for a nil grid, gridgraph.ErrOutOfBounds for an origin or
// target outside the grid, bfs.ErrNoSeeds for an empty origin set, and
// ErrUnreachableTarget when the search exhausts every reachable cell.
// Complexity: O(R×C) time and memory.
func FindDistance(g *gridgraph.GridGraph, origins []gridgraph.Coord, target gridgraph.Coord, opts ...bfs.Option[gridgraph.Coord]) (int, error) {
	res, err := search(g, origins, target, opts...)
	if err != nil {
		return 0, err
	}
	return res.Distance, nil
}

// Origins returns the seed set for mode: the recorded start for SingleOrigin,
// every minimum-elevation cell for MultiOrigin. This is the only difference
// between the modes.
func Origins(g *gridgraph.GridGraph, mode Mode) ([]gridgraph.Coord, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	switch mode {
	case SingleOrigin:
		return []gridgraph.Coord{g.Start()}, nil
	case MultiOrigin:
		return g.Lowest(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
}

// Shortest runs FindDistance from mode's origin set to the grid's end marker.
func Shortest(g *gridgraph.GridGraph, mode Mode, opts ...bfs.Option[gridgraph.Coord]) (int, error) {
	ans, err := SolveMode(g, mode, opts...)
	if err != nil {
		return 0, err
	}
	return ans.Distance, nil
}

// Solve answers each requested mode (all of Modes() when none are given) against
// the same read-only grid, in order. The first failure aborts.
func Solve(g *gridgraph.GridGraph, modes ...Mode) ([]Answer, error) {
	if len(modes) == 0 {
		modes = Modes()
	}
	out := make([]Answer, 0, len(modes))
	for _, m := range modes {
		ans, err := SolveMode(g, m)
		if err != nil {
			return nil, err
		}
		out = append(out, ans)
	}
	return out, nil
}

// SolveMode answers a single mode with search counters attached.
func SolveMode(g *gridgraph.GridGraph, mode Mode, opts ...bfs.Option[gridgraph.Coord]) (Answer, error) {
	origins, err := Origins(g, mode)
	if err != nil {
		return Answer{}, err
	}
	res, err := search(g, origins, g.End(), opts...)
	if err != nil {
		return Answer{}, fmt.Errorf("pathfinder: %v search: %w", mode, err)
	}
	return Answer{
		Mode:     mode,
		Origins:  len(origins),
		Distance: res.Distance,
		Visited:  res.Visited,
		Stale:    res.Stale,
	}, nil
}

// search validates the query and delegates to the single BFS loop.
func search(g *gridgraph.GridGraph, origins []gridgraph.Coord, target gridgraph.Coord, opts ...bfs.Option[gridgraph.Coord]) (*bfs.Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", gridgraph.ErrOutOfBounds, target)
	}
	for _, o := range origins {
		if !g.InBounds(o) {
			return nil, fmt.Errorf("%w: origin %v", gridgraph.ErrOutOfBounds, o)
		}
	}

	return bfs.Search(origins, target, g.Neighbors, opts...)
}
