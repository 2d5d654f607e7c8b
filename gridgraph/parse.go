package gridgraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxRowBytes bounds a single row accepted by Read.
const MaxRowBytes = 16 << 20

// Parse builds a GridGraph from equal-length text rows of lowercase elevation
// letters containing exactly one StartMarker and one EndMarker.
// The marker cells are recorded and stored at the elevations of MinLetter and
// MaxLetter respectively.
//
// Every failure wraps ErrMalformedGrid: ErrEmptyGrid, ErrNonRectangular,
// ErrInvalidCell, ErrDuplicateMarker, ErrNoStart or ErrNoEnd.
// No partial grid is returned.
// Complexity: O(R×C).
func Parse(lines []string) (*GridGraph, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	values := make([][]int, len(lines))
	var start, end Coord
	var haveStart, haveEnd bool

	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r, len(line), w)
		}
		row := make([]int, w)
		for c := 0; c < w; c++ {
			ch := rune(line[c])
			v, ok := ElevationOf(ch)
			if !ok {
				bad, _ := utf8.DecodeRuneInString(line[c:])
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrInvalidCell, bad, r, c)
			}
			switch ch {
			case StartMarker:
				if haveStart {
					return nil, fmt.Errorf("%w: second %q at row %d, col %d", ErrDuplicateMarker, ch, r, c)
				}
				start, haveStart = Coord{Row: r, Col: c}, true
			case EndMarker:
				if haveEnd {
					return nil, fmt.Errorf("%w: second %q at row %d, col %d", ErrDuplicateMarker, ch, r, c)
				}
				end, haveEnd = Coord{Row: r, Col: c}, true
			}
			row[c] = v
		}
		values[r] = row
	}
	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveEnd {
		return nil, ErrNoEnd
	}

	return NewGridGraph(values, start, end)
}

// Read scans rows from r and parses them with Parse.
// A trailing '\r' on each row and blank rows at the end of input are dropped.
// A row longer than MaxRowBytes is reported as ErrMalformedGrid.
func Read(r io.Reader) (*GridGraph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowBytes)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: row %d exceeds %d bytes", ErrMalformedGrid, len(lines), MaxRowBytes)
		}
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return Parse(lines)
}
