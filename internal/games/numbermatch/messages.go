package numbermatch

import "github.com/vovakirdan/numbermatch/internal/core"

type praiseLine struct {
	title string
	text  string
}

var praiseLines = []praiseLine{
	{"Awesome!", "You're so clever!"},
	{"Great!", "Keep it up!"},
	{"Really great!", "You did very well!"},
	{"Excellent!", "Keep going!"},
	{"Perfect!", "You're a math whiz!"},
}

// comboLines escalate with the streak; the text takes the combo count.
var comboLines = []praiseLine{
	{"Combo!", "%d combo! Keep going!"},
	{"Super combo!", "%d combo! Amazing!"},
	{"Crazy combo!", "%d combo! Unstoppable!"},
}

// comboThreshold is the streak length at which praise turns into combo calls.
const comboThreshold = 3

// praise picks the banner for a match. Random picks come from msgRng so
// the board stream is unaffected by which message is shown.
func (g *Game) praise(combo int) (title, text string) {
	if combo >= comboThreshold {
		line := comboLines[core.Min(combo-comboThreshold, len(comboLines)-1)]
		return g.loc.Sprintf(line.title), g.loc.Sprintf(line.text, combo)
	}
	line := praiseLines[g.msgRng.Intn(len(praiseLines))]
	return g.loc.Sprintf(line.title), g.loc.Sprintf(line.text)
}
