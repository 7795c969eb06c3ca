package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]int
	}{
		{"semicolons and commas", "1,4;4,1", [][]int{{1, 4}, {4, 1}}},
		{"slashes and spaces", "1 4 5/9 2 8", [][]int{{1, 4, 5}, {9, 2, 8}}},
		{"empty cells", "1,.;0,3", [][]int{{1, 0}, {0, 3}}},
		{"trailing separator", "2,8;", [][]int{{2, 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := parseGrid(tt.in)
			if err != nil {
				t.Fatalf("parseGrid(%q): %v", tt.in, err)
			}
			if !g.Equal(sumgrid.GridFromRows(tt.want)) {
				t.Errorf("parseGrid(%q) =\n%s", tt.in, g)
			}
		})
	}
}

func TestParseGridErrors(t *testing.T) {
	nineCells := "1 1 1 1 1 1 1 1 1"
	nineRows := strings.Repeat("1;", 9)
	for _, in := range []string{"", " ; ", "1,x", "1,2;3", "-1,2", nineCells, nineRows} {
		if _, err := parseGrid(in); !errors.Is(err, errBadGrid) {
			t.Errorf("parseGrid(%q) err = %v, want errBadGrid", in, err)
		}
	}
}

func TestParseGridLargestBoard(t *testing.T) {
	row := strings.TrimSuffix(strings.Repeat("9,", 8), ",")
	g, err := parseGrid(strings.Repeat(row+";", 8))
	if err != nil {
		t.Fatalf("parseGrid(8x8): %v", err)
	}
	if g.Rows() != 8 || g.Cols() != 8 {
		t.Errorf("grid = %dx%d, want 8x8", g.Rows(), g.Cols())
	}
}

func TestParseGridRowNumberSkipsBlankRows(t *testing.T) {
	_, err := parseGrid("1,2; ;3,x")
	if err == nil || !strings.Contains(err.Error(), "row 2 cell 2") {
		t.Errorf("parseGrid err = %v, want it to name row 2 cell 2", err)
	}

	_, err = parseGrid("1,2; ;3")
	if err == nil || !strings.Contains(err.Error(), "row 2 has 1 cells") {
		t.Errorf("parseGrid err = %v, want it to name row 2", err)
	}
}

func TestMarkPath(t *testing.T) {
	g := sumgrid.GridFromRows([][]int{{1, 4}, {0, 6}})
	got := markPath(g, sumgrid.Path{sumgrid.At(0, 1), sumgrid.At(1, 1)})
	want := " 1 [4]\n . [6]"
	if got != want {
		t.Errorf("markPath =\n%q\nwant\n%q", got, want)
	}
}

func TestResolveGameID(t *testing.T) {
	tests := map[string]string{
		"":                  "numbermatch",
		"classic":           "numbermatch",
		"timed":             "numbermatch_timed",
		"numbermatch_timed": "numbermatch_timed",
	}
	for in, want := range tests {
		if got := resolveGameID(in); got != want {
			t.Errorf("resolveGameID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPortOf(t *testing.T) {
	if got := portOf(":23234"); got != "23234" {
		t.Errorf("portOf = %q", got)
	}
	if got := portOf("0.0.0.0:2222"); got != "2222" {
		t.Errorf("portOf = %q", got)
	}
}
