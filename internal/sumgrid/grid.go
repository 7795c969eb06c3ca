package sumgrid

import (
	"strconv"
	"strings"
)

// Empty marks a cell vacated by a match and not yet refilled.
const Empty = 0

// Grid is a rectangular board of cell values stored in row-major order.
type Grid struct {
	rows  int
	cols  int
	cells []int
}

// NewGrid creates a rows x cols grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// GridFromRows builds a grid from literal rows. Rows shorter than the first
// one are padded with Empty; longer rows are truncated.
func GridFromRows(rows [][]int) *Grid {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		for c := 0; c < cols && c < len(row); c++ {
			g.cells[r*cols+c] = row[c]
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the value at c, or Empty when c is out of bounds.
func (g *Grid) At(c Coord) int {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[g.index(c)]
}

// Set writes a value at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, v int) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = v
	}
}

// IsEmpty reports whether the cell at c holds no value.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.At(c) == Empty
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, v := range g.cells {
		if v == Empty {
			n++
		}
	}
	return n
}

// Full reports whether no cell is empty.
func (g *Grid) Full() bool {
	return g.EmptyCount() == 0
}

// Sum adds the values found along a path.
func (g *Grid) Sum(p Path) int {
	total := 0
	for _, c := range p {
		total += g.At(c)
	}
	return total
}

// Values returns a copy of the cells in row-major order.
func (g *Grid) Values() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// RowValues returns a copy of the grid as nested rows.
func (g *Grid) RowValues() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: g.Values(),
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line with '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := g.cells[r*g.cols+c]
			if v == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}
