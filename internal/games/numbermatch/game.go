// Package numbermatch implements the number match puzzle: chain adjacent
// digits that add up to the target. A classic mode plays until the player
// ends the session; a timed mode races a countdown with extra power-ups.
package numbermatch

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/core"
	"github.com/vovakirdan/numbermatch/internal/i18n"
	"github.com/vovakirdan/numbermatch/internal/registry"
	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeTimed   Mode = "timed"
)

// Registered game IDs.
const (
	IDClassic = "numbermatch"
	IDTimed   = "numbermatch_timed"

	// ProgressKey is shared by both modes so coins and purchases carry over.
	ProgressKey = "numbermatch"
)

// Timer purposes.
const (
	timerCountdown = "countdown"
	timerFreeze    = "freeze"
	timerRefill    = "refill"
	timerHint      = "hint"
	timerFlash     = "flash"
)

// Game implements the number match game.
type Game struct {
	mode Mode

	runtime core.RuntimeConfig
	cfg     config.NumberMatchConfig
	preset  config.DifficultyPreset
	board   config.BoardConfig
	loc     *i18n.Localizer

	rng    *rand.Rand
	msgRng *rand.Rand
	engine *sumgrid.Engine
	sched  *core.TickScheduler
	timers *core.Timers
	tick   uint64
	step   time.Duration // Virtual time per tick

	cursor   sumgrid.Coord
	hint     sumgrid.Path // Highlighted hint chain
	removing sumgrid.Path // Vacated cells awaiting refill
	flash    flashMessage
	coins    int

	remaining time.Duration // Timed mode only
	frozen    bool

	screenW  int
	screenH  int
	layout   layout
	tooSmall bool
	gameOver bool
	timeUp   bool
	paused   bool
}

// New creates a classic number match game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates a timed number match game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDTimed, func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return IDTimed
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Number Match (Timed)"
	}
	return "Number Match"
}

// BoardID names the score board of the current mode and difficulty,
// e.g. "numbermatch/normal".
func (g *Game) BoardID() string {
	preset := g.preset
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return g.ID() + "/" + string(preset)
}

// ProgressKey returns the key of the persisted progress record.
func (g *Game) ProgressKey() string {
	return ProgressKey
}

// AcceptedConsumables marks the power-ups this mode can spend. Freezes
// stop the countdown and are only useful in timed mode.
func (g *Game) AcceptedConsumables() core.Consumables {
	accept := core.Consumables{Hints: 1, Shuffles: 1, Bombs: 1}
	if g.mode == ModeTimed {
		accept.Freezes = 1
	}
	return accept
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loc = i18n.New(runtime.Lang)

	cfg, err := config.LoadNumberMatch(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultNumberMatchConfig()
	}
	g.cfg = cfg

	preset, err := config.ParsePreset(runtime.Variant)
	if err != nil {
		preset = config.DifficultyNormal
	}
	g.preset = preset
	g.board = cfg.Board(preset)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.msgRng = rand.New(rand.NewSource(runtime.Seed ^ 0x5eed))
	g.sched = core.NewTickScheduler()
	g.timers = core.NewTimers(g.sched)
	g.tick = 0
	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.step = time.Second / time.Duration(tickRate)

	charges := cfg.StartCharges(g.mode == ModeTimed).Add(runtime.Bonus.Mask(g.AcceptedConsumables()))

	engine, err := sumgrid.NewEngine(sumgrid.Options{
		Rows:   g.board.Rows,
		Cols:   g.board.Cols,
		Target: g.board.Target,
		Scoring: sumgrid.Scoring{
			CellPoints: cfg.Scoring.CellPoints,
			ComboBonus: cfg.Scoring.ComboBonus,
		},
		Charges: sumgrid.Charges{
			Hints:    charges.Hints,
			Shuffles: charges.Shuffles,
			Bombs:    charges.Bombs,
			Freezes:  charges.Freezes,
		},
	}, g.rng)
	if err != nil {
		// Presets are validated by config.Board, so this only triggers on
		// a broken built-in default.
		def := config.DefaultNumberMatchConfig().Board(config.DifficultyNormal)
		g.board = def
		engine, _ = sumgrid.NewEngine(sumgrid.Options{Rows: def.Rows, Cols: def.Cols, Target: def.Target}, g.rng)
	}
	g.engine = engine
	g.engine.Subscribe(g.onEvent)

	g.cursor = sumgrid.At(0, 0)
	g.hint = nil
	g.removing = nil
	g.flash = flashMessage{}
	g.coins = 0
	g.frozen = false
	g.gameOver = false
	g.timeUp = false
	g.paused = false

	if g.mode == ModeTimed {
		g.remaining = cfg.Timed.Duration()
		g.startCountdown()
	}

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = computeLayout(w, h, g.board.Rows, g.board.Cols)
	g.tooSmall = w < g.layout.minW || h < g.layout.minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	// Timers run on virtual time, so a paused game freezes every effect.
	g.sched.Advance(g.step)

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if p, ok := in.Click(); ok {
		if c, hit := g.layout.cellAt(p.X, p.Y); hit {
			g.cursor = c
			g.toggle(c)
		}
	}

	if in.Has(core.ActionSelect) {
		g.toggle(g.cursor)
	}
	if in.Has(core.ActionClear) {
		g.engine.Clear()
	}
	if in.Has(core.ActionConfirm) {
		g.confirm()
	}
	if in.Has(core.ActionHint) {
		g.useHint()
	}
	if in.Has(core.ActionShuffle) {
		g.useShuffle()
	}
	if in.Has(core.ActionBomb) {
		g.useBomb()
	}
	if in.Has(core.ActionFreeze) {
		g.useFreeze()
	}
	if in.Has(core.ActionEnd) {
		g.endSession(false)
	}
}

func (g *Game) moveCursor(dr, dc int) {
	g.cursor = sumgrid.At(
		core.Clamp(g.cursor.Row+dr, 0, g.engine.Rows()-1),
		core.Clamp(g.cursor.Col+dc, 0, g.engine.Cols()-1),
	)
}

func (g *Game) toggle(c sumgrid.Coord) {
	if _, err := g.engine.Toggle(c); err != nil && !errors.Is(err, sumgrid.ErrRefillPending) {
		g.showFlash(flashWarn, g.loc.Sprintf("That cell is off the board"), "")
	}
}

func (g *Game) confirm() {
	_, err := g.engine.Confirm()
	switch {
	case err == nil:
	case errors.Is(err, sumgrid.ErrEmptySelection):
		g.showFlash(flashInfo, g.loc.Sprintf("Select numbers first"), "")
	case errors.Is(err, sumgrid.ErrInvalidSelection):
		g.showFlash(flashWarn, g.loc.Sprintf("Not yet!"), g.loc.Sprintf("The sum is %d, the target is %d", g.engine.Sum(), g.engine.Target()))
	}
}

func (g *Game) useHint() {
	_, err := g.engine.Hint()
	switch {
	case err == nil:
	case errors.Is(err, sumgrid.ErrNoHint):
		g.showFlash(flashWarn, g.loc.Sprintf("No hints available"), g.loc.Sprintf("Try shuffling the board!"))
	case errors.Is(err, sumgrid.ErrNoCharges):
		g.showFlash(flashWarn, g.loc.Sprintf("No hints left"), "")
	}
}

func (g *Game) useShuffle() {
	if err := g.engine.Shuffle(); errors.Is(err, sumgrid.ErrNoCharges) {
		g.showFlash(flashWarn, g.loc.Sprintf("No shuffles left"), "")
	}
}

func (g *Game) useBomb() {
	if _, err := g.engine.Bomb(g.cursor); errors.Is(err, sumgrid.ErrNoCharges) {
		g.showFlash(flashWarn, g.loc.Sprintf("No bombs left"), "")
	}
}

func (g *Game) useFreeze() {
	if g.mode != ModeTimed {
		return
	}
	if err := g.engine.UseFreeze(); errors.Is(err, sumgrid.ErrNoCharges) {
		g.showFlash(flashWarn, g.loc.Sprintf("No freezes left"), "")
	}
}

// endSession stops every timer and shows the result screen.
func (g *Game) endSession(timeUp bool) {
	if g.gameOver {
		return
	}
	g.timers.StopAll()
	if g.engine.RefillPending() {
		g.engine.Refill()
	}
	g.gameOver = true
	g.timeUp = timeUp
	g.frozen = false
	g.hint = nil
	g.flash = flashMessage{}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Moves:    g.engine.Moves(),
		Coins:    g.coins,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Charges:  consumablesOf(g.engine.Charges()),
	}
}

func consumablesOf(c sumgrid.Charges) core.Consumables {
	return core.Consumables{Hints: c.Hints, Shuffles: c.Shuffles, Bombs: c.Bombs, Freezes: c.Freezes}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.mode == ModeTimed {
		return g.loc.Sprintf("Arrows/WASD: Move | Space/Click: Select | Enter: Confirm | C: Clear | H: Hint | M: Shuffle | X: Bomb | Z: Freeze | P: Pause | Q: Quit")
	}
	return g.loc.Sprintf("Arrows/WASD: Move | Space/Click: Select | Enter: Confirm | C: Clear | H: Hint | M: Shuffle | X: Bomb | E: End | P: Pause | Q: Quit")
}
