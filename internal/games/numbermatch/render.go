package numbermatch

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/numbermatch/internal/core"
	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

const (
	cellWidth  = 6 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
	hudMinW    = 48
)

// layout holds the screen geometry of the board for one terminal size.
type layout struct {
	rows, cols int
	hudX, hudW int
	boardX     int
	boardY     int
	boardW     int
	boardH     int
	sumY       int
	flashY     int
	minW       int
	minH       int
}

func computeLayout(screenW, screenH, rows, cols int) layout {
	l := layout{rows: rows, cols: cols}
	l.boardW = cols*cellWidth + 1
	l.boardH = rows*cellHeight + 1
	l.hudW = core.Max(l.boardW, hudMinW)
	l.minW = l.hudW
	l.boardY = hudHeight + 1
	l.sumY = l.boardY + l.boardH + 1
	l.flashY = l.sumY + 1
	l.minH = l.flashY + 2

	l.hudX = core.Max((screenW-l.hudW)/2, 0)
	l.boardX = core.Max((screenW-l.boardW)/2, 0)
	return l
}

// cellAt maps a screen position to the board cell under it.
// Border lines belong to no cell.
func (l layout) cellAt(x, y int) (sumgrid.Coord, bool) {
	dx := x - l.boardX
	dy := y - l.boardY
	if dx <= 0 || dy <= 0 || dx >= l.boardW-1 || dy >= l.boardH-1 {
		return sumgrid.Coord{}, false
	}
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return sumgrid.Coord{}, false
	}
	return sumgrid.At(dy/cellHeight, dx/cellWidth), true
}

// cellOrigin returns the top-left border corner of a cell.
func (l layout) cellOrigin(c sumgrid.Coord) (int, int) {
	return l.boardX + c.Col*cellWidth, l.boardY + c.Row*cellHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderSum(dst)
	g.renderFlash(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, g.loc.Sprintf("Window too small"), core.Plain(core.ColorYellow))
	dst.DrawTextCentered(y+1, g.loc.Sprintf("Please resize terminal to at least %dx%d", g.layout.minW, g.layout.minH), core.Style{})
}

// renderHUD draws the title, score line and power-up line.
func (g *Game) renderHUD(dst *core.Screen) {
	l := g.layout
	title := g.loc.Sprintf(g.Title())
	titleX := l.hudX + (l.hudW-core.TextWidth(title))/2
	dst.DrawStyledText(titleX, 0, title, core.Style{Color: core.ColorBrightWhite, Bold: true})

	target := g.loc.Sprintf("Target: %d", g.engine.Target())
	dst.DrawStyledText(l.hudX, 1, target, core.Style{Color: core.ColorBrightYellow, Bold: true})

	moves := g.loc.Sprintf("Moves: %d", g.engine.Moves())
	dst.DrawText(l.hudX+(l.hudW-core.TextWidth(moves))/2, 1, moves)

	score := g.loc.Sprintf("Score: %d", g.engine.Score())
	dst.DrawStyledText(l.hudX+l.hudW-core.TextWidth(score), 1, score, core.Plain(core.ColorBrightGreen))

	ch := g.engine.Charges()
	parts := []string{
		g.loc.Sprintf("Hint %d", ch.Hints),
		g.loc.Sprintf("Shuffle %d", ch.Shuffles),
		g.loc.Sprintf("Bomb %d", ch.Bombs),
	}
	if g.mode == ModeTimed {
		parts = append(parts, g.loc.Sprintf("Freeze %d", ch.Freezes))
	}
	dst.DrawStyledText(l.hudX, 2, strings.Join(parts, "  "), core.Plain(core.ColorCyan))

	var right string
	rightStyle := core.Plain(core.ColorBrightMagenta)
	if g.mode == ModeTimed {
		right = formatClock(g.remaining)
		switch {
		case g.frozen:
			right = g.loc.Sprintf("Frozen %s", right)
			rightStyle = core.Style{Color: core.ColorBrightCyan, Bold: true}
		case g.remaining <= 10*time.Second:
			rightStyle = core.Style{Color: core.ColorBrightRed, Bold: true}
		default:
			rightStyle = core.Plain(core.ColorBrightWhite)
		}
	}
	if combo := g.engine.Combo(); combo > 1 {
		if right != "" {
			right = "x" + strconv.Itoa(combo) + "  " + right
		} else {
			right = "x" + strconv.Itoa(combo)
		}
	}
	if right != "" {
		dst.DrawStyledText(l.hudX+l.hudW-core.TextWidth(right), 2, right, rightStyle)
	}
}

// formatClock renders a duration as m:ss.
func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// renderBoard draws the grid lines and the digits.
func (g *Game) renderBoard(dst *core.Screen) {
	l := g.layout
	rows, cols := l.rows, l.cols
	border := core.Plain(core.ColorGray)

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := l.boardX + x*cellWidth
			py := l.boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetStyled(px, py, corner, border)

			if x < cols {
				dst.DrawHLine(px+1, py, cellWidth-1, '─', border)
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetStyled(px, py+i, '│', border)
				}
			}
		}
	}

	sumStyle := core.Style{Color: core.ColorBrightYellow, Bold: true, Reverse: true}
	if g.engine.Sum() == g.engine.Target() {
		sumStyle.Color = core.ColorBrightGreen
	}

	for r := range rows {
		for c := range cols {
			g.renderCell(dst, sumgrid.At(r, c), sumStyle)
		}
	}
}

func (g *Game) renderCell(dst *core.Screen, c sumgrid.Coord, selStyle core.Style) {
	px, py := g.layout.cellOrigin(c)
	x0, y := px+1, py+1
	mid := x0 + (cellWidth-1)/2

	if g.removing.Contains(c) {
		dst.SetStyled(mid, y, '·', core.Plain(core.ColorGray))
		g.renderCursor(dst, c, x0, y)
		return
	}

	v := g.engine.Value(c)
	st := core.Style{Color: core.ValueColor(v), Bold: true}
	switch {
	case g.engine.IsSelected(c):
		st = selStyle
	case g.hint.Contains(c):
		st = core.Style{Color: core.ColorBrightMagenta, Bold: true, Reverse: true}
	}

	if st.Reverse {
		dst.DrawHLine(x0, y, cellWidth-1, ' ', st)
	}
	if v != sumgrid.Empty {
		dst.SetStyled(mid, y, rune('0'+v), st)
	}
	g.renderCursor(dst, c, x0, y)
}

func (g *Game) renderCursor(dst *core.Screen, c sumgrid.Coord, x0, y int) {
	if c != g.cursor || g.gameOver {
		return
	}
	cur := core.Style{Color: core.ColorBrightWhite, Bold: true}
	if g.engine.IsSelected(c) || g.hint.Contains(c) {
		cur.Reverse = true
		cur.Color = dst.GetCell(x0, y).Style.Color
	}
	dst.SetStyled(x0, y, '[', cur)
	dst.SetStyled(x0+cellWidth-2, y, ']', cur)
}

// renderSum shows the running expression, e.g. "2 + 3 = 5".
func (g *Game) renderSum(dst *core.Screen) {
	sel := g.engine.Selection()
	if len(sel) == 0 {
		dst.DrawTextCentered(g.layout.sumY, g.loc.Sprintf("Tap a number to start"), core.Plain(core.ColorGray))
		return
	}

	terms := make([]string, len(sel))
	for i, c := range sel {
		terms[i] = strconv.Itoa(g.engine.Value(c))
	}
	sum := g.engine.Sum()
	expr := strings.Join(terms, " + ") + " = " + strconv.Itoa(sum)

	st := core.Plain(core.ColorBrightWhite)
	switch {
	case sum == g.engine.Target():
		st = core.Style{Color: core.ColorBrightGreen, Bold: true}
	case sum > g.engine.Target():
		st = core.Plain(core.ColorBrightRed)
	}
	dst.DrawTextCentered(g.layout.sumY, expr, st)
}

func (g *Game) renderFlash(dst *core.Screen) {
	if !g.flash.visible() {
		return
	}
	var st core.Style
	switch g.flash.kind {
	case flashSuccess:
		st = core.Style{Color: core.ColorBrightGreen, Bold: true}
	case flashWarn:
		st = core.Style{Color: core.ColorOrange, Bold: true}
	default:
		st = core.Style{Color: core.ColorBrightCyan, Bold: true}
	}
	dst.DrawTextCentered(g.layout.flashY, g.flash.title, st)
	if g.flash.text != "" {
		dst.DrawTextCentered(g.layout.flashY+1, g.flash.text, core.Plain(st.Color))
	}
}

// renderOverlays draws the pause and result boxes.
func (g *Game) renderOverlays(dst *core.Screen) {
	l := g.layout
	centerX := l.boardX + l.boardW/2
	centerY := l.boardY + l.boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.Plain(core.ColorBrightYellow),
			g.loc.Sprintf("PAUSED"),
			g.loc.Sprintf("Press P to resume"))
		return
	}

	if g.gameOver {
		heading := g.loc.Sprintf("GAME OVER")
		if g.timeUp {
			heading = g.loc.Sprintf("TIME'S UP!")
		}
		g.drawOverlay(dst, centerX, centerY, core.Plain(core.ColorBrightWhite),
			heading,
			g.loc.Sprintf("Score: %d", g.engine.Score()),
			g.loc.Sprintf("Moves: %d", g.engine.Moves()),
			g.loc.Sprintf("Best combo: %d", g.engine.MaxCombo()),
			g.loc.Sprintf("Coins earned: %d", g.coins),
			g.loc.Sprintf("R: Restart | B: Back"))
	}
}

// drawOverlay draws a centered text box; the first line is bold.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, st core.Style, lines ...string) {
	maxW := 0
	for _, line := range lines {
		maxW = core.Max(maxW, core.TextWidth(line))
	}

	boxW := maxW + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.Style{})
	}
	dst.DrawBox(box, st)

	for i, line := range lines {
		lineStyle := core.Style{}
		if i == 0 {
			lineStyle = core.Style{Color: st.Color, Bold: true}
		}
		x := centerX - core.TextWidth(line)/2
		dst.DrawStyledText(x, box.Y+1+i, line, lineStyle)
	}
}
