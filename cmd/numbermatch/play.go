package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/numbermatch/internal/core"
	"github.com/vovakirdan/numbermatch/internal/games/numbermatch"
	"github.com/vovakirdan/numbermatch/internal/platform/tui"
	"github.com/vovakirdan/numbermatch/internal/registry"
	"github.com/vovakirdan/numbermatch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing. The mode is "classic" (default) or "timed", or a
registered game id from 'numbermatch list'.

Controls:
  Arrows/WASD  - Move cursor
  Space/Click  - Select number
  Enter        - Confirm chain
  C            - Clear selection
  H / M / X    - Hint / Shuffle / Bomb
  Z            - Freeze countdown (timed)
  E            - End session (classic)
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Back
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 4x4 board, target 10
  normal - 5x5 board, target 10
  hard   - 6x6 board, target 15

Examples:
  numbermatch play
  numbermatch play timed
  numbermatch play --difficulty hard
  numbermatch play --config ./my-numbermatch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// resolveGameID maps mode aliases to registered game ids.
func resolveGameID(arg string) string {
	switch arg {
	case "", "classic":
		return numbermatch.IDClassic
	case "timed":
		return numbermatch.IDTimed
	default:
		return arg
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is no terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Variant:    flagDifficulty,
		Lang:       flagLang,
		ConfigPath: flagConfig,
	}
}

// openStore opens the score database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		cliLog.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
	}
	gameID = resolveGameID(gameID)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'numbermatch list' to see available modes.")
		os.Exit(1)
	}
	if _, err := difficulty(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := gameLogger()
	defer closeLog()

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig(terminalSize()), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
