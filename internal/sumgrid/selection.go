package sumgrid

import "fmt"

// Selection tracks the player's chain of selected cells.
// The zero value is an empty selection ready for use.
type Selection struct {
	path Path
}

// Toggle applies a click on c.
//
// A cell already on the path truncates the path at that cell, removing it
// and everything after it. Otherwise the cell is appended when the path is
// empty or c is adjacent to the last cell. Non-adjacent cells and empty
// cells are ignored. The returned flag reports whether the path changed.
func (s *Selection) Toggle(g *Grid, c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, c, g.Rows(), g.Cols())
	}

	if i := s.path.Index(c); i >= 0 {
		s.path = s.path[:i]
		return true, nil
	}

	if g.IsEmpty(c) {
		return false, nil
	}

	if last, ok := s.path.Last(); ok && !last.Adjacent(c) {
		return false, nil
	}

	s.path = append(s.path, c)
	return true, nil
}

// Sum reads the selected values from the grid. It is never cached.
func (s *Selection) Sum(g *Grid) int {
	return g.Sum(s.path)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.path = nil
}

// Len returns the number of selected cells.
func (s *Selection) Len() int {
	return len(s.path)
}

// Contains reports whether c is selected.
func (s *Selection) Contains(c Coord) bool {
	return s.path.Contains(c)
}

// Path returns a copy of the selected cells in selection order.
func (s *Selection) Path() Path {
	return s.path.Clone()
}
