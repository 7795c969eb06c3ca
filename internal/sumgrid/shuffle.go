package sumgrid

// Shuffle permutes values in place with the Fisher-Yates algorithm:
// for i from the last index down to 1, swap values[i] with values[j] for a
// uniformly drawn j in [0, i].
func Shuffle[T any](rng Rand, values []T) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// ShuffleGrid permutes all cells of the grid as one flattened sequence.
func ShuffleGrid(g *Grid, rng Rand) {
	Shuffle(rng, g.cells)
}
