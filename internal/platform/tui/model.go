package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numbermatch/internal/core"
	"github.com/vovakirdan/numbermatch/internal/i18n"
	"github.com/vovakirdan/numbermatch/internal/registry"
	"github.com/vovakirdan/numbermatch/internal/storage"
)

// helpHeight is the row under the game screen reserved for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	tickGen    uint64
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the session has been recorded for current game over

	// progressPrefix scopes the progress record, e.g. per SSH user.
	progressPrefix string
}

// NewModel creates a new Bubble Tea model for the given game.
// Purchased power-ups the game can use are claimed from the store here.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return newModel(game, store, cfg, logger, "")
}

// NewPlayerModel is NewModel with the progress record scoped to one player.
func NewPlayerModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) Model {
	return newModel(game, store, cfg, logger, playerPrefix(player))
}

func playerPrefix(player string) string {
	if player == "" {
		return ""
	}
	return player + ":"
}

// PlayerProgressKey returns the progress record key of a game for one
// player, as used by NewPlayerModel. An empty player is the local profile.
func PlayerProgressKey(player, progressKey string) string {
	return playerPrefix(player) + progressKey
}

func newModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, prefix string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	keyMapper := NewKeyMapper()
	keys := keyMapper.Keys().Localized(i18n.New(cfg.Lang))
	if p, ok := game.(registry.Progressive); ok {
		keys = keys.WithFreeze(p.AcceptedConsumables().Freezes > 0)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:           game,
		screen:         core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:          store,
		logger:         logger,
		config:         cfg,
		keyMapper:      keyMapper,
		keys:           keys,
		help:           h,
		inputFrame:     core.NewInputFrame(),
		tickGen:        nextTickGen(),
		progressPrefix: prefix,
	}
	m.config.Bonus = m.claimBonus()
	return m
}

func gameHeight(screenH int) int {
	return max(screenH-helpHeight, 1)
}

// gameConfig is the runtime config as seen by the game, without the help bar.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// claimBonus takes the purchased power-ups this game can spend.
func (m Model) claimBonus() core.Consumables {
	p, ok := m.game.(registry.Progressive)
	if !ok || m.store == nil {
		return core.Consumables{}
	}
	progressKey := m.progressPrefix + p.ProgressKey()
	bonus, err := m.store.ClaimConsumables(progressKey, p.AcceptedConsumables())
	if err != nil {
		m.logger.Error("claim power-ups", "key", progressKey, "err", err)
		return core.Consumables{}
	}
	if !bonus.IsZero() {
		m.logger.Debug("claimed power-ups", "key", progressKey, "bonus", bonus)
	}
	return bonus
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finishSession()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.finishSession()
		m.backToMenu = true
		return m, tea.Quit
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns left clicks into board clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
// Games that can re-layout keep their state; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.config.Bonus = m.claimBonus()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishSession()
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// finishSession stores the score and folds the session into the progress
// record, once per game. Leaving mid-game counts as ending the session.
func (m *Model) finishSession() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	state := m.game.State()
	board := registry.BoardID(m.game)
	if state.Score > 0 {
		if _, err := m.store.SaveScore(board, storage.Result{Score: state.Score, Moves: state.Moves}); err != nil {
			m.logger.Error("save score", "board", board, "err", err)
		}
	}

	p, ok := m.game.(registry.Progressive)
	if !ok {
		return
	}
	progressKey := m.progressPrefix + p.ProgressKey()

	// Bought power-ups are spent after the starting ones, so whatever
	// is left up to the claimed amount goes back to the store.
	unspent := m.config.Bonus.Min(state.Charges)
	if err := m.store.ReturnConsumables(progressKey, unspent); err != nil {
		m.logger.Error("return power-ups", "key", progressKey, "err", err)
	} else if !unspent.IsZero() {
		m.logger.Debug("returned power-ups", "key", progressKey, "unspent", unspent)
	}
	m.config.Bonus = core.Consumables{}

	if state.Moves == 0 && state.Score == 0 {
		return
	}
	progress, err := m.store.RecordSession(progressKey, storage.Session{
		Score: state.Score,
		Moves: state.Moves,
		Coins: state.Coins,
	})
	if err != nil {
		m.logger.Error("record session", "key", progressKey, "err", err)
		return
	}
	m.logger.Info("session recorded",
		"board", board,
		"score", state.Score,
		"moves", state.Moves,
		"coins", progress.Coins,
		"best", progress.HighScore,
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".numbermatch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + CurrentTheme().Footer.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select board cells
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run %s: %w", game.ID(), err)
	}
	if m, ok := final.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
