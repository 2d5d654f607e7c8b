// Package pathfinder defines modes, answers, and error definitions
// for step-counting searches over a gridgraph.GridGraph.
package pathfinder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/bfs"
)

// Sentinel errors for path finding.
var (
	// ErrGraphNil is returned if a nil grid pointer is passed.
	ErrGraphNil = errors.New("pathfinder: grid is nil")

	// ErrUnknownMode is returned by ParseMode and Origins for unsupported modes.
	ErrUnknownMode = errors.New("pathfinder: unknown mode")

	// ErrUnreachableTarget is returned when no origin can reach the target.
	// It is the same sentinel as bfs.ErrUnreachable.
	ErrUnreachableTarget = bfs.ErrUnreachable
)

// Mode selects the origin set a search is seeded with.
type Mode int

const (
	// SingleOrigin seeds the search with the grid's recorded start.
	SingleOrigin Mode = iota + 1
	// MultiOrigin seeds the search with every cell at the grid's minimum elevation.
	MultiOrigin
)

// Modes returns every supported mode in answer order.
// Each call returns a fresh slice.
func Modes() []Mode {
	return []Mode{SingleOrigin, MultiOrigin}
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case SingleOrigin:
		return "single"
	case MultiOrigin:
		return "multi"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Part returns the puzzle part number the mode answers (1 or 2).
func (m Mode) Part() int {
	return int(m)
}

// ParseMode maps "single"/"multi" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "start":
		return SingleOrigin, nil
	case "multi", "trailhead":
		return MultiOrigin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Answer is the outcome of one mode's search.
//   - Origins:  size of the seed set.
//   - Distance: fewest steps from any origin to the target.
//   - Visited, Stale: search counters from bfs.Result.
type Answer struct {
	Mode     Mode
	Origins  int
	Distance int
	Visited  int
	Stale    int
}
