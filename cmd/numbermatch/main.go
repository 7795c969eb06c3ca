// numbermatch is a terminal number puzzle: chain adjacent numbers that add
// up to the target.
//
// Usage:
//
//	numbermatch list                 - List game modes
//	numbermatch play [mode]          - Play classic or timed mode
//	numbermatch menu                 - Pick mode and difficulty interactively
//	numbermatch serve                - Start SSH server for remote play
//	numbermatch scores [board]       - Show high scores
//	numbermatch hint <grid>          - Find a matching chain on a grid
//	numbermatch shop [buy <item>]    - Spend coins on power-ups
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.numbermatch/scores.db)
//	--lang <tag>          - UI language (en, zh-Hans)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Write logs to a file while playing
//	--mono                - Monochrome menus
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/i18n"
	"github.com/vovakirdan/numbermatch/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/numbermatch/internal/games/numbermatch"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLang       string
	flagLogPath    string
	flagConfig     string
	flagDifficulty string
	flagMono       bool
)

// cliLog reports warnings of non-interactive commands on stderr.
var cliLog = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "numbermatch",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numbermatch",
	Short: "Number Match - chain numbers that add up to the target",
	Long: `Number Match is a terminal puzzle. Select a chain of adjacent numbers
whose sum equals the target to clear them; new numbers fall in from the top.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  hint     - Solve a board given on the command line
  shop     - Buy power-ups with coins

Examples:
  numbermatch play
  numbermatch play timed --difficulty hard
  numbermatch menu --lang zh-Hans
  numbermatch serve --ssh :2222
  numbermatch hint "1,4,5;9,2,8" --target 10`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
	},
}

func init() {
	env, err := config.LoadEnv()
	if err != nil {
		cliLog.Warn("ignoring environment overrides", "err", err)
		env = config.Env{DB: "~/.numbermatch/scores.db", FPS: 60, Lang: "en", SSHAddr: ":23234"}
	}

	// Global persistent flags; the environment supplies the defaults
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", env.DB, "Path to scores database")
	flags.StringVar(&flagLang, "lang", env.Lang, "UI language (en, zh-Hans)")
	flags.StringVar(&flagLogPath, "log", env.Log, "Log file for interactive sessions")
	flags.StringVar(&flagConfig, "config", env.Config, "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.BoolVar(&flagMono, "mono", false, "Monochrome menus and scoreboard")
	defaultSSHAddr = env.SSHAddr

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(shopCmd)
}

// gameLogger returns the logger of an interactive session. The TUI owns
// the terminal, so logs go to --log or nowhere.
func gameLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		cliLog.Warn("could not open log file", "path", flagLogPath, "err", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "numbermatch",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// localizer returns the printer for CLI output.
func localizer() *i18n.Localizer {
	return i18n.New(flagLang)
}

// difficulty validates --difficulty. Empty selects the default preset.
func difficulty() (config.DifficultyPreset, error) {
	return config.ParsePreset(flagDifficulty)
}
