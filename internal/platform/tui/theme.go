package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the menu, scoreboard and help bar.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Difficulty picker
	PresetLabel  lipgloss.Style
	PresetActive lipgloss.Style
	PresetArrows lipgloss.Style

	// Progress summary
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Coins     lipgloss.Style

	// Scoreboard
	ScoreTitle     lipgloss.Style
	TabNormal      lipgloss.Style
	TabActive      lipgloss.Style
	PanelBorder    lipgloss.Style
	EmptyScoreText lipgloss.Style

	Footer lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		PresetLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PresetActive: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		PresetArrows: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		StatLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Coins:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),

		ScoreTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).MarginBottom(1),
		TabNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		EmptyScoreText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),

		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Bold(true).Reverse(true)
	theme.PresetActive = lipgloss.NewStyle().Bold(true).Underline(true)
	theme.Coins = lipgloss.NewStyle().Bold(true)
	theme.TabActive = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	return theme
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
