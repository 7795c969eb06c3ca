package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numbermatch/internal/config"
	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

var flagHintTarget int

var hintCmd = &cobra.Command{
	Use:   "hint <grid>",
	Short: "Find a chain of adjacent numbers that adds up to the target",
	Long: `Run the hint search on a board given on the command line.

Rows are separated by ';' or '/', cells by ',' or spaces. Use 0 or '.' for
an empty cell. Boards are at most 8x8 and the target at most 20. The first chain found is printed as row,col coordinates
(zero-based) followed by the board with the chain marked.

Examples:
  numbermatch hint "1,4;4,1"
  numbermatch hint "1 4 5/9 2 8/3 3 3" --target 15`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().IntVarP(&flagHintTarget, "target", "t", 10, "Target sum")
}

var errBadGrid = errors.New("grid")

// parseGrid reads a board literal such as "1,4;4,1".
func parseGrid(s string) (*sumgrid.Grid, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty board", errBadGrid)
	}

	rowSep := func(r rune) bool { return r == ';' || r == '/' || r == '\n' }
	cellSep := func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }

	var rows [][]int
	for _, line := range strings.FieldsFunc(s, rowSep) {
		fields := strings.FieldsFunc(line, cellSep)
		if len(fields) == 0 {
			continue
		}
		i := len(rows)
		if i == config.MaxBoardSide {
			return nil, fmt.Errorf("%w: more than %d rows", errBadGrid, config.MaxBoardSide)
		}
		if len(fields) > config.MaxBoardSide {
			return nil, fmt.Errorf("%w: row %d has %d cells, at most %d allowed", errBadGrid, i+1, len(fields), config.MaxBoardSide)
		}
		row := make([]int, len(fields))
		for j, f := range fields {
			if f == "." {
				row[j] = sumgrid.Empty
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: row %d cell %d: bad value %q", errBadGrid, i+1, j+1, f)
			}
			row[j] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", errBadGrid, i+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty board", errBadGrid)
	}
	return sumgrid.GridFromRows(rows), nil
}

// markPath renders g with the cells of p in brackets.
func markPath(g *sumgrid.Grid, p sumgrid.Path) string {
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			coord := sumgrid.At(r, c)
			cell := "."
			if !g.IsEmpty(coord) {
				cell = strconv.Itoa(g.At(coord))
			}
			if p.Contains(coord) {
				cell = "[" + cell + "]"
			} else {
				cell = " " + cell + " "
			}
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

func runHint(_ *cobra.Command, args []string) {
	loc := localizer()

	g, err := parseGrid(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagHintTarget < config.MinTarget || flagHintTarget > config.MaxTarget {
		fmt.Fprintf(os.Stderr, "Error: target must be between %d and %d, got %d\n",
			config.MinTarget, config.MaxTarget, flagHintTarget)
		os.Exit(1)
	}

	path, ok := sumgrid.FindHint(g, flagHintTarget)
	if !ok {
		fmt.Println(loc.Sprintf("No chain adds up to %d.", flagHintTarget))
		os.Exit(2)
	}

	coords := make([]string, len(path))
	terms := make([]string, len(path))
	for i, c := range path {
		coords[i] = fmt.Sprintf("%d,%d", c.Row, c.Col)
		terms[i] = strconv.Itoa(g.At(c))
	}
	fmt.Println(strings.Join(coords, " -> "))
	fmt.Printf("%s = %d\n", strings.Join(terms, " + "), g.Sum(path))
	fmt.Println()
	fmt.Println(markPath(g, path))
}
