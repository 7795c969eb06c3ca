package sumgrid

import "fmt"

// MaxDigit is the largest value a cell may ever hold.
const MaxDigit = 9

// Rand is the random source used for generation, refill and shuffles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// MaxValue returns the largest cell value allowed for a target:
// min(target-1, 9). A single cell can therefore never equal the target.
func MaxValue(target int) int {
	if target-1 < MaxDigit {
		return target - 1
	}
	return MaxDigit
}

// randomValue draws uniformly from [1, MaxValue(target)].
func randomValue(rng Rand, target int) int {
	return rng.Intn(MaxValue(target)) + 1
}

// Validate checks grid dimensions and target.
func Validate(rows, cols, target int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, rows, cols)
	}
	if target < 2 {
		return fmt.Errorf("%w: target %d must be at least 2", ErrInvalidConfig, target)
	}
	return nil
}

// Generate produces a rows x cols grid with every cell drawn independently
// and uniformly from [1, MaxValue(target)].
func Generate(rows, cols, target int, rng Rand) (*Grid, error) {
	if err := Validate(rows, cols, target); err != nil {
		return nil, err
	}
	g := NewGrid(rows, cols)
	for i := range g.cells {
		g.cells[i] = randomValue(rng, target)
	}
	return g, nil
}
