package sumgrid

// FindHint searches the board for a chain of adjacent, distinct, non-empty
// cells whose values add up to target.
//
// Start cells are tried in row-major order and neighbours in the order
// right, down, left, up; the first chain found is returned. The returned
// path begins with its start cell. Branches are pruned as soon as the
// running sum exceeds the target, which is sound because every value is
// positive.
func FindHint(g *Grid, target int) (Path, bool) {
	if target <= 0 {
		return nil, false
	}

	s := hintSearch{
		grid:    g,
		target:  target,
		visited: make([]bool, g.Size()),
		path:    make(Path, 0, g.Size()),
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if s.dfs(At(r, c), 0) {
				return s.path.Clone(), true
			}
		}
	}
	return nil, false
}

type hintSearch struct {
	grid    *Grid
	target  int
	visited []bool
	path    Path
}

func (s *hintSearch) dfs(c Coord, sum int) bool {
	v := s.grid.At(c)
	if v == Empty {
		return false
	}
	sum += v
	if sum > s.target {
		return false
	}

	idx := s.grid.index(c)
	s.visited[idx] = true
	s.path = append(s.path, c)

	if sum == s.target {
		return true
	}

	for _, n := range c.Neighbors() {
		if !s.grid.InBounds(n) || s.visited[s.grid.index(n)] {
			continue
		}
		if s.dfs(n, sum) {
			return true
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.visited[idx] = false
	return false
}
