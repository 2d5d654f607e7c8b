// Command hillclimb prints the fewest steps from the start, and from the best
// lowest-elevation trailhead, to the summit of a letter heightmap.
package main

import "github.com/katalvlaran/hillclimb/internal/cli"

func main() {
	cli.Execute()
}
