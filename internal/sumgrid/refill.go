package sumgrid

// Refill restores every column to full height.
//
// Surviving values of a column keep their relative order and are written
// after the fresh values, so new numbers always end up in the upper rows.
// Returns the number of cells that were generated.
func Refill(g *Grid, target int, rng Rand) int {
	generated := 0
	column := make([]int, 0, g.rows)

	for c := 0; c < g.cols; c++ {
		column = column[:0]
		for r := 0; r < g.rows; r++ {
			if v := g.cells[r*g.cols+c]; v != Empty {
				column = append(column, v)
			}
		}

		missing := g.rows - len(column)
		for r := 0; r < missing; r++ {
			g.cells[r*g.cols+c] = randomValue(rng, target)
		}
		for i, v := range column {
			g.cells[(missing+i)*g.cols+c] = v
		}
		generated += missing
	}

	return generated
}
