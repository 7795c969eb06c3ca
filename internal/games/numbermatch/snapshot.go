package numbermatch

import (
	"time"

	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateRefilling   GameStateType = "refilling"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateTimeUp      GameStateType = "time_up"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "classic" or "timed"
	Preset    string
	Target    int
	Score     int
	Moves     int
	Combo     int
	Coins     int
	Board     [][]int
	Selection sumgrid.Path
	Hint      sumgrid.Path
	Cursor    sumgrid.Coord
	Charges   sumgrid.Charges
	Remaining time.Duration // 0 in classic mode
	Frozen    bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver && g.timeUp:
		state = StateTimeUp
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.engine.RefillPending():
		state = StateRefilling
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Preset:    string(g.preset),
		Target:    g.engine.Target(),
		Score:     g.engine.Score(),
		Moves:     g.engine.Moves(),
		Combo:     g.engine.Combo(),
		Coins:     g.coins,
		Board:     g.engine.Grid().RowValues(),
		Selection: g.engine.Selection(),
		Hint:      g.hint.Clone(),
		Cursor:    g.cursor,
		Charges:   g.engine.Charges(),
		Remaining: g.remaining,
		Frozen:    g.frozen,
		State:     state,
	}
}
