package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
// Every loader failure wraps ErrMalformedGrid so callers can test the whole
// family with a single errors.Is.
var (
	// ErrMalformedGrid is the parent of every grid construction failure.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrNoStart indicates the start marker 'S' is missing.
	ErrNoStart = fmt.Errorf("%w: no start marker", ErrMalformedGrid)
	// ErrNoEnd indicates the end marker 'E' is missing.
	ErrNoEnd = fmt.Errorf("%w: no end marker", ErrMalformedGrid)
	// ErrDuplicateMarker indicates 'S' or 'E' occurs more than once.
	ErrDuplicateMarker = fmt.Errorf("%w: duplicate marker", ErrMalformedGrid)
	// ErrInvalidCell indicates a character outside 'a'..'z', 'S', 'E'.
	ErrInvalidCell = fmt.Errorf("%w: invalid cell", ErrMalformedGrid)
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: coordinate out of bounds", ErrMalformedGrid)
)
