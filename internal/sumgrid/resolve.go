package sumgrid

import "fmt"

// Scoring holds the point values of a match.
type Scoring struct {
	CellPoints int `yaml:"cell_points"`
	ComboBonus int `yaml:"combo_bonus"`
}

// DefaultScoring awards 10 points per cell and 5 per combo step.
func DefaultScoring() Scoring {
	return Scoring{CellPoints: 10, ComboBonus: 5}
}

// Delta returns the score for clearing pathLen cells at the given combo.
// The combo bonus only applies from the second consecutive match on.
func (s Scoring) Delta(pathLen, combo int) int {
	delta := pathLen * s.CellPoints
	if combo > 1 {
		delta += combo * s.ComboBonus
	}
	return delta
}

// Resolve validates a path against the target and empties its cells.
// On error the grid is left untouched.
func Resolve(g *Grid, p Path, target int) error {
	if len(p) == 0 {
		return ErrEmptySelection
	}
	for _, c := range p {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
	}
	if sum := g.Sum(p); sum != target {
		return fmt.Errorf("%w: sum %d, target %d", ErrInvalidSelection, sum, target)
	}
	for _, c := range p {
		g.Set(c, Empty)
	}
	return nil
}
