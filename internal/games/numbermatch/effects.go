package numbermatch

import (
	"time"

	"github.com/vovakirdan/numbermatch/internal/sumgrid"
)

type flashKind int

const (
	flashNone flashKind = iota
	flashInfo
	flashSuccess
	flashWarn
)

// flashMessage is the transient two-part banner under the board.
type flashMessage struct {
	kind  flashKind
	title string
	text  string
}

func (f flashMessage) visible() bool {
	return f.kind != flashNone
}

// showFlash replaces the current banner and arms its expiry.
func (g *Game) showFlash(kind flashKind, title, text string) {
	g.flash = flashMessage{kind: kind, title: title, text: text}
	g.timers.After(timerFlash, g.cfg.Timing.Flash(), func() {
		g.flash = flashMessage{}
	})
}

// onEvent turns engine transitions into timed visual effects.
func (g *Game) onEvent(ev sumgrid.Event) {
	switch ev.Kind {
	case sumgrid.EventMatched:
		g.coins += len(ev.Path)
		g.hint = nil
		g.removing = ev.Path
		title, text := g.praise(ev.Combo)
		g.showFlash(flashSuccess, title, text)
		g.scheduleRefill()

	case sumgrid.EventBombed:
		g.hint = nil
		g.removing = ev.Path
		g.showFlash(flashInfo, g.loc.Sprintf("Boom!"), "")
		g.scheduleRefill()

	case sumgrid.EventRefilled:
		g.removing = nil
		if !g.engine.HasMove() {
			g.showFlash(flashWarn, g.loc.Sprintf("No more matches"), g.loc.Sprintf("Try shuffling the board!"))
		}

	case sumgrid.EventHinted:
		g.hint = ev.Path
		g.timers.After(timerHint, g.cfg.Timing.HintHighlight(), func() {
			g.hint = nil
		})

	case sumgrid.EventShuffled:
		g.hint = nil
		g.timers.Stop(timerHint)
		g.showFlash(flashInfo, g.loc.Sprintf("Shuffled!"), "")

	case sumgrid.EventFrozen:
		g.freeze(g.cfg.Timed.Freeze())

	case sumgrid.EventCleared:
		g.hint = nil
		g.timers.Stop(timerHint)
	}
}

// scheduleRefill empties the vacated cells after the removal animation.
func (g *Game) scheduleRefill() {
	g.timers.After(timerRefill, g.cfg.Timing.RemovalDelay(), func() {
		g.engine.Refill()
	})
}

// freeze stops the countdown for d. Freezing again while frozen restarts
// the freeze window instead of stacking it.
func (g *Game) freeze(d time.Duration) {
	g.frozen = true
	g.timers.Stop(timerCountdown)
	g.showFlash(flashInfo, g.loc.Sprintf("Time frozen!"), g.loc.Sprintf("%d seconds", int(d/time.Second)))
	g.timers.After(timerFreeze, d, func() {
		g.frozen = false
		g.startCountdown()
	})
}

// startCountdown ticks the timed-mode clock once per second.
func (g *Game) startCountdown() {
	g.timers.Every(timerCountdown, time.Second, func() {
		g.remaining -= time.Second
		if g.remaining <= 0 {
			g.remaining = 0
			g.endSession(true)
		}
	})
}
