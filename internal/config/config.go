// Package config provides YAML-based game configuration loading and
// difficulty presets for the number match game.
package config

import (
	"time"

	"github.com/vovakirdan/numbermatch/internal/core"
)

// NumberMatchConfig contains all configuration for the number match game.
type NumberMatchConfig struct {
	Presets map[DifficultyPreset]BoardConfig `yaml:"presets"`
	Scoring ScoringConfig                    `yaml:"scoring"`
	Charges ChargesConfig                    `yaml:"charges"`
	Timed   TimedConfig                      `yaml:"timed"`
	Timing  TimingConfig                     `yaml:"timing"`
	Shop    ShopConfig                       `yaml:"shop"`
}

// BoardConfig defines the board of one difficulty preset.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Target int `yaml:"target"`
}

// ScoringConfig defines match scoring.
type ScoringConfig struct {
	CellPoints int `yaml:"cell_points"` // Points per removed cell
	ComboBonus int `yaml:"combo_bonus"` // Points per combo step from the second match on
}

// ChargesConfig defines starting power-ups for each mode.
type ChargesConfig struct {
	Classic core.Consumables `yaml:"classic"`
	Timed   core.Consumables `yaml:"timed"`
}

// TimedConfig defines the countdown mode.
type TimedConfig struct {
	DurationSec int `yaml:"duration_sec"` // Session length
	FreezeSec   int `yaml:"freeze_sec"`   // Countdown pause per freeze
}

// TimingConfig defines presentation delays in milliseconds.
type TimingConfig struct {
	RemovalDelayMs  int `yaml:"removal_delay_ms"`  // Removed cells stay visible before refill
	HintHighlightMs int `yaml:"hint_highlight_ms"` // Hint path highlight
	FlashMs         int `yaml:"flash_ms"`          // Status message lifetime
}

// ShopConfig defines coin prices of purchasable power-ups.
type ShopConfig struct {
	Hint    int `yaml:"hint"`
	Shuffle int `yaml:"shuffle"`
	Bomb    int `yaml:"bomb"`
	Freeze  int `yaml:"freeze"`
}

// Duration returns the countdown length.
func (t TimedConfig) Duration() time.Duration {
	return time.Duration(t.DurationSec) * time.Second
}

// Freeze returns the countdown pause of one freeze.
func (t TimedConfig) Freeze() time.Duration {
	return time.Duration(t.FreezeSec) * time.Second
}

// RemovalDelay returns how long removed cells stay visible.
func (t TimingConfig) RemovalDelay() time.Duration {
	return time.Duration(t.RemovalDelayMs) * time.Millisecond
}

// HintHighlight returns how long a hint path is highlighted.
func (t TimingConfig) HintHighlight() time.Duration {
	return time.Duration(t.HintHighlightMs) * time.Millisecond
}

// Flash returns the lifetime of a status message.
func (t TimingConfig) Flash() time.Duration {
	return time.Duration(t.FlashMs) * time.Millisecond
}

// Price returns the coin cost of an item by name, or false if the shop
// does not sell it.
func (s ShopConfig) Price(item string) (int, bool) {
	switch item {
	case "hint", "hints":
		return s.Hint, true
	case "shuffle", "shuffles":
		return s.Shuffle, true
	case "bomb", "bombs":
		return s.Bomb, true
	case "freeze", "freezes":
		return s.Freeze, true
	default:
		return 0, false
	}
}
