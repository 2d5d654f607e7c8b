package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
)

// ExampleParse demonstrates loading the canonical heightmap and inspecting
// the recorded markers and their normalized elevations.
func ExampleParse() {
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
	s, _ := gg.At(gg.Start())
	e, _ := gg.At(gg.End())
	fmt.Printf("%dx%d start=%v@%d end=%v@%d\n", gg.Rows(), gg.Cols(), gg.Start(), s, gg.End(), e)
	fmt.Println("trailheads:", len(gg.Lowest()))

	// Output:
	// 5x8 start=(0,0)@0 end=(2,5)@25
	// trailheads: 6
}

// ExampleGridGraph_Neighbors shows the asymmetric step rule: from 'b' the walker
// may climb to 'c' or drop to 'a', but from 'a' it cannot reach 'c'.
func ExampleGridGraph_Neighbors() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 2},
		{1, 9},
	}, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 1, Col: 1})

	fmt.Println(gg.Neighbors(gridgraph.Coord{Row: 0, Col: 0}))
	fmt.Println(gg.Neighbors(gridgraph.Coord{Row: 1, Col: 0}))
	fmt.Println(gg.Neighbors(gridgraph.Coord{Row: 1, Col: 1}))

	// Output:
	// [(1,0)]
	// [(0,0)]
	// [(0,1) (1,0)]
}
