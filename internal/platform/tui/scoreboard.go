package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/core"
	"github.com/vovakirdan/numbermatch/internal/i18n"
	"github.com/vovakirdan/numbermatch/internal/registry"
	"github.com/vovakirdan/numbermatch/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show board list sidebar
	sidebarWidth       = 28  // Width of board list sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev board"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next board"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k ScoreboardKeyMap) localized(loc *i18n.Localizer) ScoreboardKeyMap {
	for _, b := range []*key.Binding{
		&k.Up, &k.Down, &k.Left, &k.Right, &k.Back, &k.Quit, &k.NextBoard, &k.PrevBoard,
	} {
		h := b.Help()
		b.SetHelp(h.Key, loc.Sprintf(h.Desc))
	}
	return k
}

// BoardInfo names one score board: a game mode at one difficulty.
type BoardInfo struct {
	ID    string
	Title string
}

// ListBoards returns a board for every registered game and difficulty,
// followed by any other boards the store holds scores for.
func ListBoards(store *storage.Store, loc *i18n.Localizer) []BoardInfo {
	var boards []BoardInfo
	seen := make(map[string]bool)
	for _, g := range registry.List() {
		for _, p := range config.Presets {
			id := g.ID + "/" + string(p)
			seen[id] = true
			boards = append(boards, BoardInfo{
				ID:    id,
				Title: loc.Sprintf("%s - %s", loc.Sprintf(g.Title), loc.Sprintf(presetTitle(p))),
			})
		}
	}

	if store == nil {
		return boards
	}
	stored, err := store.Boards()
	if err != nil {
		return boards
	}
	for _, id := range stored {
		if !seen[id] {
			boards = append(boards, BoardInfo{ID: id, Title: id})
		}
	}
	return boards
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	boards      []BoardInfo
	cursor      int
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       storage.BoardStats
	loc         *i18n.Localizer
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show board list sidebar
}

// NewScoreboardModel creates a new scoreboard model sized and localized
// from cfg.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig) ScoreboardModel {
	loc := i18n.New(cfg.Lang)
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := ScoreboardModel{
		boards:      ListBoards(store, loc),
		store:       store,
		loc:         loc,
		keys:        DefaultScoreboardKeyMap().localized(loc),
		help:        h,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		showSidebar: cfg.ScreenW >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadScores()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: m.loc.Sprintf("Rank"), Width: 6},
		{Title: m.loc.Sprintf("Score"), Width: 10},
		{Title: m.loc.Sprintf("Moves"), Width: 7},
		{Title: m.loc.Sprintf("Date"), Width: 18},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	if tableWidth > 40 {
		columns[1].Width = 12
		columns[3].Width = min(tableWidth-29, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Header, stats, help, margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads scores and stats of the board under the cursor.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.stats = storage.BoardStats{}
	if m.store != nil && len(m.boards) > 0 {
		id := m.boards[m.cursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			m.loc.Sprintf("%d", s.Score),
			m.loc.Sprintf("%d", s.Moves),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) moveBoard(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.boards)) % len(m.boards)
	m.loadScores()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard), key.Matches(msg, m.keys.Right):
			m.moveBoard(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard), key.Matches(msg, m.keys.Left):
			m.moveBoard(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	t := CurrentTheme()
	var b strings.Builder

	title := m.loc.Sprintf("HIGH SCORES")
	if len(m.boards) > 0 {
		title = m.loc.Sprintf("HIGH SCORES - %s", m.boards[m.cursor].Title)
	}
	b.WriteString(t.ScoreTitle.Render(centerText(title, m.width)))
	b.WriteString("\n")

	if line := m.renderStats(t); line != "" {
		b.WriteString(centerText(line, m.width))
	}
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout(t))
	} else {
		b.WriteString(m.renderNarrowLayout(t))
	}

	b.WriteString("\n")
	b.WriteString(t.Footer.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats summarizes the selected board.
func (m ScoreboardModel) renderStats(t Theme) string {
	if m.stats.Games == 0 {
		return ""
	}
	s := m.stats
	parts := []string{
		t.StatLabel.Render(m.loc.Sprintf("Games")) + " " + t.StatValue.Render(m.loc.Sprintf("%d", s.Games)),
		t.StatLabel.Render(m.loc.Sprintf("Best")) + " " + t.StatValue.Render(m.loc.Sprintf("%d", s.Best)),
		t.StatLabel.Render(m.loc.Sprintf("Average")) + " " + t.StatValue.Render(m.loc.Sprintf("%.1f", s.Average)),
	}
	if !s.LastPlayed.IsZero() {
		parts = append(parts, t.StatLabel.Render(m.loc.Sprintf("Last played")+" "+s.LastPlayed.Format("Jan 02 15:04")))
	}
	return strings.Join(parts, "   ")
}

// renderWideLayout renders the scoreboard with sidebar for board selection.
func (m ScoreboardModel) renderWideLayout(t Theme) string {
	var sidebar strings.Builder
	sidebar.WriteString(m.loc.Sprintf("Boards"))
	sidebar.WriteString("\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, board := range m.boards {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}
		sidebar.WriteString(style.Render(cursor + truncate(board.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	sidebarRendered := t.PanelBorder.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := t.PanelBorder.Render(m.renderTableContent(t))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the scoreboard with board tabs above the table.
func (m ScoreboardModel) renderNarrowLayout(t Theme) string {
	var b strings.Builder

	tabs := make([]string, len(m.boards))
	for i, board := range m.boards {
		short := truncate(board.Title, 14)
		if i == m.cursor {
			tabs[i] = t.TabActive.Render(short)
		} else {
			tabs[i] = t.TabNormal.Render(" " + short + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.boards) > 0 {
		// Just show the current board with arrows
		tabLine = t.PresetArrows.Render("< ") + t.TabActive.Render(m.boards[m.cursor].Title) + t.PresetArrows.Render(" >")
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(t.PanelBorder.Render(m.renderTableContent(t)), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent(t Theme) string {
	if len(m.scores) == 0 {
		return t.EmptyScoreText.Render(m.loc.Sprintf("No scores recorded yet.\nPlay a game to set a high score!"))
	}
	return m.table.View()
}

// truncate shortens s to at most n columns.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "."
}

// Board returns the board under the cursor.
func (m ScoreboardModel) Board() (BoardInfo, bool) {
	if len(m.boards) == 0 {
		return BoardInfo{}, false
	}
	return m.boards[m.cursor], true
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewScoreboardModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("scoreboard: %w", err)
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
