package sumgrid

import "fmt"

// Charges counts the power-ups available to a session.
type Charges struct {
	Hints    int
	Shuffles int
	Bombs    int
	Freezes  int
}

// Options configures a new engine.
type Options struct {
	Rows    int
	Cols    int
	Target  int
	Scoring Scoring
	Charges Charges
}

// Match is the outcome of a confirmed selection.
type Match struct {
	Path  Path
	Sum   int
	Delta int
	Combo int
}

// Engine owns one puzzle session: the board, the selection and the score.
// All mutation goes through its methods. It is not safe for concurrent use.
type Engine struct {
	opts Options
	rng  Rand

	grid *Grid
	sel  Selection

	score    int
	moves    int
	combo    int
	maxCombo int
	cleared  int
	charges  Charges

	refillPending bool
	observers     []Observer
}

// NewEngine generates a board and starts a session.
// A zero Scoring is replaced by DefaultScoring.
func NewEngine(opts Options, rng Rand) (*Engine, error) {
	if opts.Scoring == (Scoring{}) {
		opts.Scoring = DefaultScoring()
	}
	g, err := Generate(opts.Rows, opts.Cols, opts.Target, rng)
	if err != nil {
		return nil, err
	}
	return &Engine{
		opts:    opts,
		rng:     rng,
		grid:    g,
		charges: opts.Charges,
	}, nil
}

// NewEngineWithGrid starts a session on an existing board.
// The grid is copied; its dimensions override opts.Rows and opts.Cols.
func NewEngineWithGrid(opts Options, g *Grid, rng Rand) (*Engine, error) {
	if opts.Scoring == (Scoring{}) {
		opts.Scoring = DefaultScoring()
	}
	opts.Rows, opts.Cols = g.Rows(), g.Cols()
	if err := Validate(opts.Rows, opts.Cols, opts.Target); err != nil {
		return nil, err
	}
	return &Engine{
		opts:    opts,
		rng:     rng,
		grid:    g.Clone(),
		charges: opts.Charges,
	}, nil
}

// Subscribe registers an observer for every subsequent event.
func (e *Engine) Subscribe(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) emit(kind EventKind, p Path, delta int) {
	if len(e.observers) == 0 {
		return
	}
	ev := Event{
		Kind:  kind,
		Path:  p.Clone(),
		Delta: delta,
		Combo: e.combo,
		Score: e.score,
	}
	for _, o := range e.observers {
		o(ev)
	}
}

// Toggle applies a click on c to the selection.
func (e *Engine) Toggle(c Coord) (bool, error) {
	if e.refillPending {
		return false, ErrRefillPending
	}
	changed, err := e.sel.Toggle(e.grid, c)
	if err != nil || !changed {
		return false, err
	}
	e.emit(EventSelected, e.sel.path, 0)
	return true, nil
}

// Clear drops the selection and breaks the combo.
func (e *Engine) Clear() {
	e.sel.Clear()
	e.combo = 0
	e.emit(EventCleared, nil, 0)
}

// Confirm resolves the current selection.
// On success the matched cells become empty and a refill is pending.
// On error nothing changes.
func (e *Engine) Confirm() (Match, error) {
	if e.refillPending {
		return Match{}, ErrRefillPending
	}
	p := e.sel.Path()
	sum := e.grid.Sum(p)
	if err := Resolve(e.grid, p, e.opts.Target); err != nil {
		return Match{}, err
	}

	e.moves++
	e.combo++
	if e.combo > e.maxCombo {
		e.maxCombo = e.combo
	}
	delta := e.opts.Scoring.Delta(len(p), e.combo)
	e.score += delta
	e.cleared += len(p)
	e.sel.Clear()
	e.refillPending = true

	e.emit(EventMatched, p, delta)
	return Match{Path: p, Sum: sum, Delta: delta, Combo: e.combo}, nil
}

// Refill tops up all vacated cells and returns how many were generated.
func (e *Engine) Refill() int {
	n := Refill(e.grid, e.opts.Target, e.rng)
	e.refillPending = false
	e.emit(EventRefilled, nil, 0)
	return n
}

// Hint spends a hint charge and returns a matching chain.
// The charge is kept when the board has no match.
func (e *Engine) Hint() (Path, error) {
	if e.refillPending {
		return nil, ErrRefillPending
	}
	if e.charges.Hints <= 0 {
		return nil, fmt.Errorf("hint: %w", ErrNoCharges)
	}
	p, ok := FindHint(e.grid, e.opts.Target)
	if !ok {
		return nil, ErrNoHint
	}
	e.charges.Hints--
	e.emit(EventHinted, p, 0)
	return p, nil
}

// Shuffle spends a shuffle charge and permutes the board.
func (e *Engine) Shuffle() error {
	if e.refillPending {
		return ErrRefillPending
	}
	if e.charges.Shuffles <= 0 {
		return fmt.Errorf("shuffle: %w", ErrNoCharges)
	}
	e.charges.Shuffles--
	e.combo = 0
	e.sel.Clear()
	ShuffleGrid(e.grid, e.rng)
	e.emit(EventShuffled, nil, 0)
	return nil
}

// Bomb spends a bomb charge to empty c and its edge neighbours.
// No points are awarded and the combo breaks. A refill becomes pending.
func (e *Engine) Bomb(c Coord) (Path, error) {
	if e.refillPending {
		return nil, ErrRefillPending
	}
	if !e.grid.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if e.charges.Bombs <= 0 {
		return nil, fmt.Errorf("bomb: %w", ErrNoCharges)
	}

	blast := Path{c}
	for _, n := range c.Neighbors() {
		if e.grid.InBounds(n) {
			blast = append(blast, n)
		}
	}

	e.charges.Bombs--
	for _, b := range blast {
		e.grid.Set(b, Empty)
	}
	e.cleared += len(blast)
	e.combo = 0
	e.sel.Clear()
	e.refillPending = true

	e.emit(EventBombed, blast, 0)
	return blast, nil
}

// UseFreeze spends a freeze charge. The engine has no clock; the caller
// owns the timing of the effect.
func (e *Engine) UseFreeze() error {
	if e.charges.Freezes <= 0 {
		return fmt.Errorf("freeze: %w", ErrNoCharges)
	}
	e.charges.Freezes--
	e.emit(EventFrozen, nil, 0)
	return nil
}

// HasMove reports whether any chain on the board reaches the target.
func (e *Engine) HasMove() bool {
	if e.refillPending {
		return false
	}
	_, ok := FindHint(e.grid, e.opts.Target)
	return ok
}

// Grid returns a copy of the board.
func (e *Engine) Grid() *Grid { return e.grid.Clone() }

// Value returns the value of a single cell.
func (e *Engine) Value(c Coord) int { return e.grid.At(c) }

// Rows returns the board height.
func (e *Engine) Rows() int { return e.grid.Rows() }

// Cols returns the board width.
func (e *Engine) Cols() int { return e.grid.Cols() }

// Selection returns a copy of the selected path.
func (e *Engine) Selection() Path { return e.sel.Path() }

// IsSelected reports whether c is on the selected path.
func (e *Engine) IsSelected(c Coord) bool { return e.sel.Contains(c) }

// Sum returns the live sum of the selection.
func (e *Engine) Sum() int { return e.sel.Sum(e.grid) }

// Target returns the session target.
func (e *Engine) Target() int { return e.opts.Target }

// Score returns the running score.
func (e *Engine) Score() int { return e.score }

// Moves returns the number of successful matches.
func (e *Engine) Moves() int { return e.moves }

// Combo returns the current combo counter.
func (e *Engine) Combo() int { return e.combo }

// MaxCombo returns the longest combo reached in the session.
func (e *Engine) MaxCombo() int { return e.maxCombo }

// CellsCleared returns the total number of cells removed by matches and bombs.
func (e *Engine) CellsCleared() int { return e.cleared }

// Charges returns the remaining power-ups.
func (e *Engine) Charges() Charges { return e.charges }

// RefillPending reports whether removed cells await a refill.
func (e *Engine) RefillPending() bool { return e.refillPending }
