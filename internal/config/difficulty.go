package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/numbermatch/internal/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts user input into a preset. An empty string selects
// the normal preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Board returns the board of a preset. Unknown or incomplete presets fall
// back to the normal preset and then to the built-in default.
func (c NumberMatchConfig) Board(preset DifficultyPreset) BoardConfig {
	if b, ok := c.Presets[preset]; ok && b.valid() {
		return b
	}
	if b, ok := c.Presets[DifficultyNormal]; ok && b.valid() {
		return b
	}
	return DefaultNumberMatchConfig().Presets[DifficultyNormal]
}

// Board limits. The hint search runs after every refill and grows
// exponentially with board size and target.
const (
	MaxBoardSide = 8
	MinTarget    = 2
	MaxTarget    = 20
)

func (b BoardConfig) valid() bool {
	return b.Rows >= 1 && b.Rows <= MaxBoardSide &&
		b.Cols >= 1 && b.Cols <= MaxBoardSide &&
		b.Target >= MinTarget && b.Target <= MaxTarget
}

// StartCharges returns the starting power-ups of a mode.
func (c NumberMatchConfig) StartCharges(timed bool) core.Consumables {
	if timed {
		return c.Charges.Timed
	}
	return c.Charges.Classic
}
