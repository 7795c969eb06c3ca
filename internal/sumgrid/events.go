package sumgrid

// EventKind identifies an engine state transition.
type EventKind int

const (
	EventSelected EventKind = iota + 1 // selection path changed
	EventCleared                       // selection dropped, combo reset
	EventMatched                       // path removed and scored
	EventRefilled                      // vacated cells refilled
	EventHinted                        // hint consumed
	EventShuffled                      // board reshuffled
	EventBombed                        // cells blasted by a bomb
	EventFrozen                        // freeze charge consumed
)

var eventNames = map[EventKind]string{
	EventSelected: "selected",
	EventCleared:  "cleared",
	EventMatched:  "matched",
	EventRefilled: "refilled",
	EventHinted:   "hinted",
	EventShuffled: "shuffled",
	EventBombed:   "bombed",
	EventFrozen:   "frozen",
}

// String returns the lowercase event name.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event describes one successful state transition.
// Path holds the cells involved: the selection, the matched cells, the
// hinted chain or the blasted cells depending on Kind.
type Event struct {
	Kind  EventKind
	Path  Path
	Delta int // score gained, Matched only
	Combo int // combo after the transition
	Score int // score after the transition
}

// Observer receives engine events synchronously on the caller's goroutine.
type Observer func(Event)
