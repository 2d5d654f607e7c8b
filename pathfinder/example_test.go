package pathfinder_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/pathfinder"
)

// ExampleSolve climbs the canonical heightmap from the marked start and from
// the best of every lowest-elevation trailhead.
func ExampleSolve() {
	gg, err := gridgraph.Parse([]string{
		"Sabqponm",
		"abcryxxl",
		"accszExk",
		"acctuvwj",
		"abdefghi",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	answers, err := pathfinder.Solve(gg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range answers {
		fmt.Printf("Answer Part %d = %d (%s, %d origins)\n", a.Mode.Part(), a.Distance, a.Mode, a.Origins)
	}
	// Output:
	// Answer Part 1 = 31 (single, 1 origins)
	// Answer Part 2 = 29 (multi, 6 origins)
}

// ExampleFindDistance seeds the search with an arbitrary origin set.
func ExampleFindDistance() {
	gg, _ := gridgraph.Parse([]string{
		"Sbcde",
		"abcdE",
	})
	// E sits at 'z': nothing adjacent is high enough to climb onto it
	_, err := pathfinder.FindDistance(gg, []gridgraph.Coord{gg.Start()}, gg.End())
	fmt.Println(err != nil)

	// any cell of the grid can still be a target
	d, _ := pathfinder.FindDistance(gg, []gridgraph.Coord{gg.Start()}, gridgraph.Coord{Row: 0, Col: 4})
	fmt.Println(d)
	// Output:
	// true
	// 4
}
