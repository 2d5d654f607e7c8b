package pathfinder_test

import (
	"testing"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/pathfinder"
)

// serpentine builds an n×n heightmap where a single flat corridor leads from the
// start to a low summit, forcing the search to cover most of the grid.
func serpentine(n int) *gridgraph.GridGraph {
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
	}
	// even rows are open floor, odd rows are walls of 25 with one gap at alternating ends
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r%2 == 1 {
				values[r][c] = 25
			}
		}
	}
	for r := 1; r < n; r += 2 {
		if (r/2)%2 == 0 {
			values[r][n-1] = 0
		} else {
			values[r][0] = 0
		}
	}
	end := gridgraph.Coord{Row: n - 1, Col: n - 1}
	if (n-1)%2 == 1 {
		end.Row = n - 2
	}
	values[end.Row][end.Col] = 1
	gg, _ := gridgraph.NewGridGraph(values, gridgraph.Coord{}, end)
	return gg
}

// BenchmarkShortest_Single measures the single-origin search on a 301×301 serpentine.
func BenchmarkShortest_Single(b *testing.B) {
	gg := serpentine(301)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfinder.Shortest(gg, pathfinder.SingleOrigin); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortest_Multi measures the multi-origin search on the same grid,
// where nearly every corridor cell is a seed.
func BenchmarkShortest_Multi(b *testing.B) {
	gg := serpentine(301)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfinder.Shortest(gg, pathfinder.MultiOrigin); err != nil {
			b.Fatal(err)
		}
	}
}
