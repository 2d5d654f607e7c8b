// Package gridgraph defines core types and markers
// for the gridgraph subpackage of github.com/katalvlaran/hillclimb.
package gridgraph

import (
	"fmt"
)

// Markers recognized by Parse.
const (
	// StartMarker marks the recorded origin; stored at MinLetter's elevation.
	StartMarker = 'S'
	// EndMarker marks the target; stored at MaxLetter's elevation.
	EndMarker = 'E'
	// MinLetter is the lowest elevation letter.
	MinLetter = 'a'
	// MaxLetter is the highest elevation letter.
	MaxLetter = 'z'
)

// MaxClimb is the largest upward elevation change a single step may make.
// Descents are unbounded.
const MaxClimb = 1

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col int
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ElevationOf maps an elevation letter to its height: 'a'→0 … 'z'→25.
// Markers map to the elevation they are normalized to.
// Reports false for any other rune.
func ElevationOf(r rune) (int, bool) {
	switch {
	case r == StartMarker:
		return 0, true
	case r == EndMarker:
		return MaxLetter - MinLetter, true
	case r >= MinLetter && r <= MaxLetter:
		return int(r - MinLetter), true
	}
	return 0, false
}

// GridGraph treats a 2D elevation grid as a directed graph. It is immutable once built.
// cells[row][col] holds the normalized elevation; start and end are the recorded markers.
// offsets is precomputed for neighbor enumeration in up, left, down, right order.
type GridGraph struct {
	rows, cols int
	cells      [][]int
	start, end Coord
	offsets    [4]Coord
}
