package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/core"
	"github.com/vovakirdan/numbermatch/internal/i18n"
	"github.com/vovakirdan/numbermatch/internal/registry"
	"github.com/vovakirdan/numbermatch/internal/storage"
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the mode and difficulty picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	presetCursor   int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	gameConfig     config.NumberMatchConfig
	loc            *i18n.Localizer
	keyMapper      *KeyMapper
	progressPrefix string
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The difficulty cursor starts at
// cfg.Variant.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	gameCfg, err := config.LoadNumberMatch(cfg.ConfigPath)
	if err != nil {
		gameCfg = config.DefaultNumberMatchConfig()
	}

	presetCursor := 1
	if preset, err := config.ParsePreset(cfg.Variant); err == nil {
		for i, p := range config.Presets {
			if p == preset {
				presetCursor = i
			}
		}
	}

	return MenuModel{
		items:        items,
		presetCursor: presetCursor,
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		store:        store,
		config:       cfg,
		gameConfig:   gameCfg,
		loc:          i18n.New(cfg.Lang),
		keyMapper:    NewKeyMapper(),
	}
}

// WithProgressPrefix scopes the progress summary to one player, matching
// the prefix given to the game model.
func (m MenuModel) WithProgressPrefix(prefix string) MenuModel {
	m.progressPrefix = prefix
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.presetCursor = (m.presetCursor + len(config.Presets) - 1) % len(config.Presets)

	case MenuActionRight:
		m.presetCursor = (m.presetCursor + 1) % len(config.Presets)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.config.Variant = string(m.preset())
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) preset() config.DifficultyPreset {
	return config.Presets[m.presetCursor]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	t := CurrentTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render(m.loc.Sprintf("N U M B E R   M A T C H")), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(t.MenuSubtitle.Render(m.loc.Sprintf("Chain adjacent numbers that add up to the target")), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+m.loc.Sprintf(item.Title)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.renderPresets(t), m.width))
	b.WriteString("\n")

	board := m.gameConfig.Board(m.preset())
	desc := m.loc.Sprintf("%dx%d board, target %d", board.Rows, board.Cols, board.Target)
	b.WriteString(centerText(t.MenuDescription.Render(desc), m.width))
	b.WriteString("\n\n")

	if summary := m.renderProgress(t); summary != "" {
		b.WriteString(centerText(summary, m.width))
		b.WriteString("\n\n")
	}

	controls := m.loc.Sprintf("Up/Down: Mode  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit")
	b.WriteString(centerText(t.Footer.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderPresets(t Theme) string {
	parts := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		name := m.loc.Sprintf(presetTitle(p))
		if i == m.presetCursor {
			parts[i] = t.PresetActive.Render(name)
		} else {
			parts[i] = t.PresetLabel.Render(name)
		}
	}
	return t.PresetArrows.Render("< ") + strings.Join(parts, "  ") + t.PresetArrows.Render(" >")
}

// renderProgress summarizes the best score of the selected board and the
// coins and power-ups waiting in the progress record.
func (m MenuModel) renderProgress(t Theme) string {
	if m.store == nil || len(m.items) == 0 {
		return ""
	}
	item := m.items[m.cursor]
	boardID := item.GameID + "/" + string(m.preset())

	best, err := m.store.HighScore(boardID)
	if err != nil {
		return ""
	}
	progress, err := m.store.LoadProgress(m.progressPrefix + registry.ProgressKeyOf(item.GameID))
	if err != nil {
		return ""
	}

	parts := []string{
		t.StatLabel.Render(m.loc.Sprintf("Best")) + " " + t.StatValue.Render(m.loc.Sprintf("%d", best)),
		t.StatLabel.Render(m.loc.Sprintf("Coins")) + " " + t.Coins.Render(m.loc.Sprintf("%d", progress.Coins)),
	}
	if !progress.Consumables.IsZero() {
		c := progress.Consumables
		parts = append(parts, t.StatLabel.Render(m.loc.Sprintf("Stored: %d hints, %d shuffles, %d bombs, %d freezes",
			c.Hints, c.Shuffles, c.Bombs, c.Freezes)))
	}
	return strings.Join(parts, "   ")
}

// presetTitle returns the display name of a difficulty preset.
func presetTitle(p config.DifficultyPreset) string {
	switch p {
	case config.DifficultyEasy:
		return "Easy"
	case config.DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config: size changes and the chosen
// difficulty in Variant.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its visible width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
