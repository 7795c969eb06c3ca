package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/i18n"
	"github.com/vovakirdan/numbermatch/internal/platform/tui"
	"github.com/vovakirdan/numbermatch/internal/registry"
	"github.com/vovakirdan/numbermatch/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the top high scores. A board is a mode and difficulty such as
"numbermatch/normal"; a bare mode or alias shows all its difficulties, and no
argument shows every board with scores.

Examples:
  numbermatch scores
  numbermatch scores timed
  numbermatch scores numbermatch/hard --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores per board")
}

func runScores(_ *cobra.Command, args []string) {
	loc := localizer()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	boards, err := selectBoards(store, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'numbermatch list' to see available modes.")
		os.Exit(1)
	}

	if len(boards) == 0 {
		fmt.Println(loc.Sprintf("No scores recorded yet."))
		fmt.Println()
		fmt.Println(loc.Sprintf("Play 'numbermatch play' to set the first high score!"))
		return
	}

	for i, b := range boards {
		if i > 0 {
			fmt.Println()
		}
		if err := printBoard(store, b, loc); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}

	p, err := store.LoadProgress(tui.PlayerProgressKey("", registry.ProgressKeyOf(gameOf(boards[0].ID))))
	if err == nil && p.GamesPlayed > 0 {
		fmt.Println()
		fmt.Println(loc.Sprintf("Games played: %d  Total moves: %d  Coins: %d", p.GamesPlayed, p.TotalMoves, p.Coins))
	}
}

// selectBoards resolves the scores argument to the boards to print.
func selectBoards(store *storage.Store, args []string) ([]tui.BoardInfo, error) {
	all := tui.ListBoards(store, localizer())

	if len(args) == 0 {
		stored, err := store.Boards()
		if err != nil {
			return nil, err
		}
		has := make(map[string]bool, len(stored))
		for _, id := range stored {
			has[id] = true
		}
		var boards []tui.BoardInfo
		for _, b := range all {
			if has[b.ID] {
				boards = append(boards, b)
			}
		}
		return boards, nil
	}

	arg := args[0]
	if strings.Contains(arg, "/") {
		for _, b := range all {
			if b.ID == arg {
				return []tui.BoardInfo{b}, nil
			}
		}
		gameID, preset, _ := strings.Cut(arg, "/")
		if _, err := config.ParsePreset(preset); err != nil || !registry.Exists(gameID) {
			return nil, fmt.Errorf("unknown board %q", arg)
		}
		return nil, nil
	}

	gameID := resolveGameID(arg)
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q", arg)
	}
	var boards []tui.BoardInfo
	for _, b := range all {
		if strings.HasPrefix(b.ID, gameID+"/") {
			boards = append(boards, b)
		}
	}
	return boards, nil
}

// gameOf returns the game a board belongs to.
func gameOf(boardID string) string {
	gameID, _, _ := strings.Cut(boardID, "/")
	return gameID
}

func printBoard(store *storage.Store, b tui.BoardInfo, loc *i18n.Localizer) error {
	scores, err := store.TopScores(b.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println(loc.Sprintf("High Scores - %s", b.Title))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  " + loc.Sprintf("No scores recorded yet."))
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", loc.Sprintf("Rank"), loc.Sprintf("Score"), loc.Sprintf("Moves"), loc.Sprintf("Date"))
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-6d  %s\n", i+1, loc.Sprintf("%d", entry.Score), entry.Moves, dateStr)
	}

	stats, err := store.Stats(b.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(loc.Sprintf("Best: %d  Games: %d  Average: %.1f", stats.Best, stats.Games, stats.Average))
	return nil
}
