// Package sumgrid implements the grid-sum puzzle: a board of small positive
// numbers where the player chains 4-adjacent cells whose values add up to a
// target. The package is pure logic with no I/O; randomness is injected.
package sumgrid

import "fmt"

// Coord addresses a board cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Adjacent reports whether two cells share an edge. Diagonals do not count.
func (c Coord) Adjacent(o Coord) bool {
	dr := c.Row - o.Row
	dc := c.Col - o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// directions is the neighbour order used by the hint search:
// right, down, left, up.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},
}

// Neighbors returns the four edge neighbours of c in search order.
// Callers filter out-of-bounds results.
func (c Coord) Neighbors() [4]Coord {
	var out [4]Coord
	for i, d := range directions {
		out[i] = c.Add(d[0], d[1])
	}
	return out
}

// Path is an ordered chain of cells.
type Path []Coord

// Contains reports whether c is on the path.
func (p Path) Contains(c Coord) bool {
	return p.Index(c) >= 0
}

// Index returns the position of c in the path, or -1.
func (p Path) Index(c Coord) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

// Last returns the final cell of the path.
func (p Path) Last() (Coord, bool) {
	if len(p) == 0 {
		return Coord{}, false
	}
	return p[len(p)-1], true
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// IsChain reports whether the path has no repeated cell and every
// consecutive pair is adjacent.
func (p Path) IsChain() bool {
	seen := make(map[Coord]bool, len(p))
	for i, c := range p {
		if seen[c] {
			return false
		}
		seen[c] = true
		if i > 0 && !p[i-1].Adjacent(c) {
			return false
		}
	}
	return true
}
