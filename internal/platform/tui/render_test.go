package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/numbermatch/internal/core"
	"github.com/vovakirdan/numbermatch/internal/registry"
	"github.com/vovakirdan/numbermatch/internal/storage"
)

func TestRenderScreenPlainMatchesString(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(1, 0, "Score: 40")
	s.DrawText(0, 2, "4 + 6 = 10")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderScreenWideRunes(t *testing.T) {
	s := core.NewScreen(8, 1)
	end := s.DrawText(0, 0, "目标10")
	if end != 6 {
		t.Fatalf("DrawText end = %d, want 6", end)
	}

	got := RenderScreen(s)
	if got != "目标10  " {
		t.Errorf("RenderScreen = %q", got)
	}
}

func TestRenderScreenKeepsStyledText(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawStyledText(0, 0, "[7]", core.Plain(core.ColorGreen))
	s.DrawText(4, 0, "x3")

	got := RenderScreen(s)
	if !strings.Contains(got, "[7]") || !strings.Contains(got, "x3") {
		t.Errorf("RenderScreen = %q, text lost", got)
	}
}

func TestScoreboardListsEveryDifficulty(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("legacy", storage.Result{Score: 5}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	boards := ListBoards(store, nil)
	ids := make(map[string]string, len(boards))
	for _, b := range boards {
		ids[b.ID] = b.Title
	}
	for _, id := range []string{"numbermatch/easy", "numbermatch/normal", "numbermatch/hard", "numbermatch_timed/hard"} {
		if _, ok := ids[id]; !ok {
			t.Errorf("board %q missing", id)
		}
	}
	if got := ids["numbermatch/normal"]; got != "Number Match - Normal" {
		t.Errorf("title = %q", got)
	}
	if _, ok := ids["legacy"]; !ok {
		t.Error("stored board without a registered game should be listed")
	}
	if boards[len(boards)-1].ID != "legacy" {
		t.Error("stored-only boards should come last")
	}
}

func TestScoreboardCyclesBoards(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("numbermatch/easy", storage.Result{Score: 30, Moves: 3}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewScoreboardModel(store, testRuntime())
	first, _ := m.Board()
	if first.ID != "numbermatch/easy" {
		t.Fatalf("first board = %q", first.ID)
	}
	if len(m.scores) != 1 || m.scores[0].Moves != 3 || m.stats.Best != 30 {
		t.Errorf("scores = %v stats = %+v", m.scores, m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	second, _ := m.Board()
	if second.ID != "numbermatch/normal" || len(m.scores) != 0 {
		t.Errorf("after tab board = %q with %d scores", second.ID, len(m.scores))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	last, _ := m.Board()
	if want := len(registry.List())*3 - 1; m.cursor != want {
		t.Errorf("cursor = %d (%q), want wrap to %d", m.cursor, last.ID, want)
	}

	next, _ = m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
}
