package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/numbermatch/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadNumberMatch("")
	if err != nil {
		t.Fatalf("LoadNumberMatch() error = %v", err)
	}

	want := DefaultNumberMatchConfig()
	for _, p := range Presets {
		if cfg.Board(p) != want.Board(p) {
			t.Errorf("Board(%s) = %+v, want %+v", p, cfg.Board(p), want.Board(p))
		}
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("Scoring = %+v, want %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Charges != want.Charges {
		t.Errorf("Charges = %+v, want %+v", cfg.Charges, want.Charges)
	}
	if cfg.Timed != want.Timed || cfg.Timing != want.Timing || cfg.Shop != want.Shop {
		t.Errorf("timing/shop mismatch: got %+v %+v %+v", cfg.Timed, cfg.Timing, cfg.Shop)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nm.yaml")
	data := "presets:\n  hard:\n    rows: 7\n    cols: 7\n    target: 20\ntimed:\n  duration_sec: 30\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNumberMatch(path)
	if err != nil {
		t.Fatalf("LoadNumberMatch() error = %v", err)
	}

	if got := cfg.Board(DifficultyHard); got != (BoardConfig{Rows: 7, Cols: 7, Target: 20}) {
		t.Errorf("Board(hard) = %+v", got)
	}
	if got := cfg.Board(DifficultyEasy); got.Rows != 4 {
		t.Errorf("Board(easy) should keep the default, got %+v", got)
	}
	if cfg.Timed.Duration() != 30*time.Second {
		t.Errorf("Timed.Duration() = %v, want 30s", cfg.Timed.Duration())
	}
	if cfg.Timed.Freeze() != 5*time.Second {
		t.Errorf("Timed.Freeze() = %v, want 5s", cfg.Timed.Freeze())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadNumberMatch(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("presets: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadNumberMatch(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("LoadNumberMatch(bad) error = %v", err)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "numbermatch.yaml"), []byte("scoring:\n  cell_points: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNumberMatch("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scoring.CellPoints != 12 {
		t.Errorf("CellPoints = %d, want 12", cfg.Scoring.CellPoints)
	}
	if cfg.Scoring.ComboBonus != 5 {
		t.Errorf("ComboBonus = %d, want default 5", cfg.Scoring.ComboBonus)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBoardFallback(t *testing.T) {
	cfg := NumberMatchConfig{
		Presets: map[DifficultyPreset]BoardConfig{
			DifficultyHard: {Rows: 0, Cols: 6, Target: 15},
		},
	}

	if got := cfg.Board(DifficultyHard); got != (BoardConfig{Rows: 5, Cols: 5, Target: 10}) {
		t.Errorf("invalid preset should fall back to built-in normal, got %+v", got)
	}
}

func TestBoardLimits(t *testing.T) {
	tests := []struct {
		board BoardConfig
		want  bool
	}{
		{BoardConfig{Rows: 1, Cols: 1, Target: 2}, true},
		{BoardConfig{Rows: MaxBoardSide, Cols: MaxBoardSide, Target: MaxTarget}, true},
		{BoardConfig{Rows: MaxBoardSide + 1, Cols: 5, Target: 10}, false},
		{BoardConfig{Rows: 5, Cols: MaxBoardSide + 1, Target: 10}, false},
		{BoardConfig{Rows: 5, Cols: 5, Target: MaxTarget + 1}, false},
		{BoardConfig{Rows: 5, Cols: 5, Target: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.board.valid(); got != tt.want {
			t.Errorf("%+v valid() = %v, want %v", tt.board, got, tt.want)
		}
	}

	cfg := DefaultNumberMatchConfig()
	cfg.Presets[DifficultyHard] = BoardConfig{Rows: 9, Cols: 9, Target: 15}
	if got := cfg.Board(DifficultyHard); got != cfg.Presets[DifficultyNormal] {
		t.Errorf("oversized preset should fall back to normal, got %+v", got)
	}
}

func TestStartCharges(t *testing.T) {
	cfg := DefaultNumberMatchConfig()

	if got := cfg.StartCharges(false); got != (core.Consumables{Hints: 3, Shuffles: 2}) {
		t.Errorf("StartCharges(classic) = %+v", got)
	}
	if got := cfg.StartCharges(true); got.Bombs != 1 || got.Freezes != 2 {
		t.Errorf("StartCharges(timed) = %+v", got)
	}
}

func TestShopPrice(t *testing.T) {
	shop := DefaultNumberMatchConfig().Shop

	if p, ok := shop.Price("hint"); !ok || p != 20 {
		t.Errorf("Price(hint) = %d, %v", p, ok)
	}
	if p, ok := shop.Price("freezes"); !ok || p != 30 {
		t.Errorf("Price(freezes) = %d, %v", p, ok)
	}
	if _, ok := shop.Price("lives"); ok {
		t.Error("Price(lives) should not be sold")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultNumberMatchConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*NumberMatchConfig)
		want   string
	}{
		{"tiny target", func(c *NumberMatchConfig) {
			c.Presets[DifficultyEasy] = BoardConfig{Rows: 4, Cols: 4, Target: 1}
		}, "preset easy"},
		{"board too wide", func(c *NumberMatchConfig) {
			c.Presets[DifficultyHard] = BoardConfig{Rows: 6, Cols: 9, Target: 15}
		}, "preset hard"},
		{"target too large", func(c *NumberMatchConfig) {
			c.Presets[DifficultyNormal] = BoardConfig{Rows: 5, Cols: 5, Target: 21}
		}, "preset normal"},
		{"no countdown", func(c *NumberMatchConfig) { c.Timed.DurationSec = 0 }, "duration_sec"},
		{"free bombs", func(c *NumberMatchConfig) { c.Shop.Bomb = 0 }, "bomb price"},
		{"negative points", func(c *NumberMatchConfig) { c.Scoring.ComboBonus = -1 }, "scoring"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultNumberMatchConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoadSkipsInvalidSearchPath(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "numbermatch.yaml"), []byte("timed:\n  duration_sec: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNumberMatch("")
	if err != nil {
		t.Fatalf("LoadNumberMatch() error = %v", err)
	}
	if cfg.Timed.DurationSec != 90 {
		t.Errorf("DurationSec = %d, want embedded default 90", cfg.Timed.DurationSec)
	}

	// The same file given explicitly is an error.
	if _, err := LoadNumberMatch(filepath.Join("configs", "numbermatch.yaml")); err == nil ||
		!strings.Contains(err.Error(), "invalid config") {
		t.Errorf("LoadNumberMatch(custom invalid) error = %v", err)
	}
}
