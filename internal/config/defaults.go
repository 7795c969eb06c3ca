package config

import (
	_ "embed"

	"github.com/vovakirdan/numbermatch/internal/core"
)

//go:embed defaults/numbermatch.yaml
var defaultNumberMatchYAML []byte

// DefaultNumberMatchConfig returns the default number match configuration.
func DefaultNumberMatchConfig() NumberMatchConfig {
	return NumberMatchConfig{
		Presets: map[DifficultyPreset]BoardConfig{
			DifficultyEasy:   {Rows: 4, Cols: 4, Target: 10},
			DifficultyNormal: {Rows: 5, Cols: 5, Target: 10},
			DifficultyHard:   {Rows: 6, Cols: 6, Target: 15},
		},
		Scoring: ScoringConfig{
			CellPoints: 10,
			ComboBonus: 5,
		},
		Charges: ChargesConfig{
			Classic: core.Consumables{Hints: 3, Shuffles: 2},
			Timed:   core.Consumables{Hints: 3, Shuffles: 2, Bombs: 1, Freezes: 2},
		},
		Timed: TimedConfig{
			DurationSec: 90,
			FreezeSec:   5,
		},
		Timing: TimingConfig{
			RemovalDelayMs:  400,
			HintHighlightMs: 2000,
			FlashMs:         1500,
		},
		Shop: ShopConfig{
			Hint:    20,
			Shuffle: 15,
			Bomb:    40,
			Freeze:  30,
		},
	}
}
