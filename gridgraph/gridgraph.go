package gridgraph

import (
	"fmt"
	"strings"
)

// orthogonal lists the four step directions: up, left, down, right.
var orthogonal = [4]Coord{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice of
// elevations with the given start and end coordinates.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrOutOfBounds if start or end lies outside the grid.
// Complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, start, end Coord) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	gg := &GridGraph{
		rows:    h,
		cols:    w,
		cells:   cells,
		start:   start,
		end:     end,
		offsets: orthogonal,
	}
	if !gg.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !gg.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}

	return gg, nil
}

// Rows returns the number of rows.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the number of columns.
func (gg *GridGraph) Cols() int { return gg.cols }

// Len returns the number of cells.
func (gg *GridGraph) Len() int { return gg.rows * gg.cols }

// Start returns the recorded origin coordinate.
func (gg *GridGraph) Start() Coord { return gg.start }

// End returns the target coordinate.
func (gg *GridGraph) End() Coord { return gg.end }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < gg.rows && c.Col >= 0 && c.Col < gg.cols
}

// Get returns the elevation at (row, col), or false if it is out of bounds.
// Complexity: O(1).
func (gg *GridGraph) Get(row, col int) (int, bool) {
	return gg.At(Coord{Row: row, Col: col})
}

// At returns the elevation at c, or false if c is out of bounds.
func (gg *GridGraph) At(c Coord) (int, bool) {
	if !gg.InBounds(c) {
		return 0, false
	}
	return gg.cells[c.Row][c.Col], true
}

// MinElevation returns the lowest elevation present in the grid.
// Complexity: O(R×C).
func (gg *GridGraph) MinElevation() int {
	lowest := gg.cells[0][0]
	for _, row := range gg.cells {
		for _, v := range row {
			if v < lowest {
				lowest = v
			}
		}
	}
	return lowest
}

// Lowest returns every coordinate at MinElevation, in row-major order.
// Complexity: O(R×C).
func (gg *GridGraph) Lowest() []Coord {
	lowest := gg.MinElevation()
	var out []Coord
	for r, row := range gg.cells {
		for c, v := range row {
			if v == lowest {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// String renders the grid back as elevation letters with the markers restored.
// Elevations outside 'a'..'z' render as '?'.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow(gg.rows * (gg.cols + 1))
	for r, row := range gg.cells {
		for c, v := range row {
			switch (Coord{Row: r, Col: c}) {
			case gg.start:
				sb.WriteByte(StartMarker)
			case gg.end:
				sb.WriteByte(EndMarker)
			default:
				if v < 0 || v > MaxLetter-MinLetter {
					sb.WriteByte('?')
				} else {
					sb.WriteByte(byte(MinLetter + v))
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
