package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and difficulties",
	Long:  `Shows the registered game modes, their controls and the difficulty presets.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	loc := localizer()
	games := registry.List()

	if len(games) == 0 {
		fmt.Println(loc.Sprintf("No games available."))
		return
	}

	fmt.Println(loc.Sprintf("Available modes:"))
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", loc.Sprintf("Title"))
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, loc.Sprintf(g.Title))

		game, err := registry.Create(g.ID)
		if err != nil {
			continue
		}
		if c, ok := game.(registry.Controller); ok {
			// Controls are localized once the game is reset.
			game.Reset(runtimeConfig(80, 24))
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", c.Controls())
		}
	}

	gameCfg, err := config.LoadNumberMatch(flagConfig)
	if err != nil {
		cliLog.Warn("using default config", "err", err)
	}
	fmt.Println()
	fmt.Println(loc.Sprintf("Difficulties:"))
	for _, p := range config.Presets {
		b := gameCfg.Board(p)
		fmt.Printf("  %-8s %s\n", p, loc.Sprintf("%dx%d board, target %d", b.Rows, b.Cols, b.Target))
	}

	fmt.Println()
	fmt.Println(loc.Sprintf("Run 'numbermatch play <id>' to play a mode."))
}
