package gridgraph

// CanStep reports whether a single move from -> to is legal: both cells are in
// bounds, orthogonally adjacent, and to is at most MaxClimb higher than from.
// Descending any amount is always legal. The rule is directional:
// CanStep(a, b) does not imply CanStep(b, a).
// Complexity: O(1).
func (gg *GridGraph) CanStep(from, to Coord) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr*dr+dc*dc != 1 {
		return false
	}
	src, ok := gg.At(from)
	if !ok {
		return false
	}
	dst, ok := gg.At(to)
	if !ok {
		return false
	}
	return dst <= src+MaxClimb
}

// Neighbors returns the legally reachable cells adjacent to c,
// enumerated up, left, down, right. Out-of-bounds candidates are never produced,
// and an out-of-bounds c has no neighbors.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	return gg.AppendNeighbors(make([]Coord, 0, len(gg.offsets)), c)
}

// AppendNeighbors appends the legal neighbors of c to dst and returns the
// extended slice, letting hot loops reuse a buffer.
func (gg *GridGraph) AppendNeighbors(dst []Coord, c Coord) []Coord {
	src, ok := gg.At(c)
	if !ok {
		return dst
	}
	limit := src + MaxClimb
	for _, d := range gg.offsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if v, ok := gg.At(n); ok && v <= limit {
			dst = append(dst, n)
		}
	}
	return dst
}
